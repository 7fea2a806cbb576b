package validation

// Validators maps each field of a form to its validator.
type Validators[F comparable] map[F]Validator

// Errors holds the outcome of validation per field. A field is present only once it has
// been validated; "" means it passed.
type Errors[F comparable] map[F]string

// ValidateMany validates the fields present in values. Fields without a validator pass.
// Passing a single-entry map validates that field alone.
func ValidateMany[F comparable](validators Validators[F], values map[F]string) Errors[F] {
	errs := make(Errors[F], len(values))
	for field, value := range values {
		v, ok := validators[field]
		if !ok {
			errs[field] = ""
			continue
		}
		errs[field] = v(value)
	}
	return errs
}

// ValidateField validates one field.
func ValidateField[F comparable](validators Validators[F], field F, value string) string {
	return ValidateMany(validators, map[F]string{field: value})[field]
}

// AnyErrors returns true if at least one field failed.
func AnyErrors[F comparable](errs Errors[F]) bool {
	for _, msg := range errs {
		if msg != "" {
			return true
		}
	}
	return false
}

// HasError returns true if field was validated and failed. Unvalidated and passing
// fields are both false.
func HasError[F comparable](errs Errors[F], field F) bool {
	return errs[field] != ""
}

// Merge copies src into a clone of dst; src wins for the fields it mentions.
func Merge[F comparable](dst, src Errors[F]) Errors[F] {
	out := dst.Clone()
	for field, msg := range src {
		out[field] = msg
	}
	return out
}

// Clone returns an independent copy. A nil map clones to an empty one.
func (e Errors[F]) Clone() Errors[F] {
	out := make(Errors[F], len(e))
	for field, msg := range e {
		out[field] = msg
	}
	return out
}

// Failed returns only the failing fields.
func (e Errors[F]) Failed() map[F]string {
	out := make(map[F]string)
	for field, msg := range e {
		if msg != "" {
			out[field] = msg
		}
	}
	return out
}
