package errors

// Detail keys shared by the rule error constructors.
const (
	DetailCode        = "code"
	DetailPosition    = "position"
	DetailInputLength = "inputLength"
	DetailMin         = "min"
	DetailMax         = "max"
	DetailGot         = "got"
	DetailProvider    = "provider"
	DetailInput       = "input"
)

// NewParseError reports a rule string no grammar could handle.
func NewParseError(input, reason string) *RuleflowError {
	return Newf(ErrParse, "cannot parse rule %q: %s", input, reason).
		WithDetail(DetailInput, input)
}

// NewUnknownRuleError reports a code that is not in the registry.
func NewUnknownRuleError(code string) *RuleflowError {
	return Newf(ErrUnknownRule, "unknown rule '%s'", code).
		WithDetail(DetailCode, code)
}

// NewArityError reports an argument count outside a rule's arity.
// A negative max means the rule accepts any number of trailing arguments.
func NewArityError(code string, min, max, got int) *RuleflowError {
	var err *RuleflowError
	switch {
	case max < 0:
		err = Newf(ErrArity, "rule '%s' takes at least %d argument(s), got %d", code, min, got)
	case min == max:
		err = Newf(ErrArity, "rule '%s' takes %d argument(s), got %d", code, min, got)
	default:
		err = Newf(ErrArity, "rule '%s' takes %d to %d argument(s), got %d", code, min, max, got)
	}
	return err.WithDetails(map[string]interface{}{
		DetailCode: code,
		DetailMin:  min,
		DetailMax:  max,
		DetailGot:  got,
	})
}

// NewCapabilityUnavailableError reports a known code whose provider failed
// to initialize.
func NewCapabilityUnavailableError(code, provider string, cause error) *RuleflowError {
	var err *RuleflowError
	if cause != nil {
		err = Wrapf(cause, ErrCapabilityUnavailable, "rule '%s' is unavailable: %s provider not loaded", code, provider)
	} else {
		err = Newf(ErrCapabilityUnavailable, "rule '%s' is unavailable: %s provider not loaded", code, provider)
	}
	return err.WithDetail(DetailCode, code).WithDetail(DetailProvider, provider)
}

// NewTransformationError wraps a handler failure with the rule code, the
// position of the instruction in the chain and the length of its input.
func NewTransformationError(cause error, code string, position, inputLength int) *RuleflowError {
	if cause == nil {
		cause = New(ErrInternal, "handler failed without an error")
	}
	return Wrapf(cause, ErrTransformation, "rule '%s' failed at step %d", code, position+1).
		WithDetails(map[string]interface{}{
			DetailCode:        code,
			DetailPosition:    position,
			DetailInputLength: inputLength,
		})
}

// NewDuplicateRuleError reports a registration collision.
func NewDuplicateRuleError(code string) *RuleflowError {
	return Newf(ErrDuplicateRule, "rule '%s' is already registered", code).
		WithDetail(DetailCode, code)
}
