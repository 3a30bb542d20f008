package handlers

import "testing"

func TestValidator(t *testing.T) {
	missing := &Validator{location: "body", field: "content"}
	if missing.Required() == nil {
		t.Error("nil value must fail Required")
	}

	blank := ""
	v := &Validator{location: "body", field: "content", value: &blank}
	if v.Required() != nil {
		t.Error("present value must pass Required")
	}
	if v.Empty() == nil {
		t.Error("blank value must fail Empty")
	}

	str := "release notes"
	v = &Validator{location: "body", field: "content", value: &str}
	if v.Empty() != nil {
		t.Error("non-blank value must pass Empty")
	}
	if v.MinLength(20) == nil {
		t.Error("short value must fail MinLength(20)")
	}
	if v.MaxLength(5) == nil {
		t.Error("long value must fail MaxLength(5)")
	}
	if v.MaxLength(50) != nil {
		t.Error("value must pass MaxLength(50)")
	}
	if v.Matches("^[a-z]+$") == nil {
		t.Error("value with a space must fail the charset regexp")
	}
	if v.URL() == nil {
		t.Error("plain text must fail URL")
	}
	if v.Custom(func(string) bool { return false }, "rejected") == nil {
		t.Error("failing predicate must produce an error")
	}

	link := "https://cdn.example.com/banner.png"
	v = &Validator{location: "body", field: "avatar", value: &link}
	if v.URL() != nil {
		t.Error("valid url must pass URL")
	}
}

func TestMergeErrors(t *testing.T) {
	e := &CustomError{Location: "body", Param: "content", Msg: "is required"}
	merged := mergeErrors(nil, e, nil)
	if len(merged) != 1 || merged[0] != e {
		t.Errorf("expected single error but was %v", merged)
	}
}
