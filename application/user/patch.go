package user

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"

	"userdir/domain/user"
)

// ErrPatchNotApplied every patch failure: malformed operations, unknown paths,
// failed operations and documents that no longer describe a user.
var ErrPatchNotApplied = errors.New("patch not applied")

// documentField one entry of the struct <-> document mapping
type documentField struct {
	name string
	get  func(UserDTO) any
	set  func(*UserDTO, any) error
}

// documentFields patchable keys in canonical order
var documentFields = []documentField{
	stringField("email", func(d *UserDTO) *string { return &d.Email }),
	stringField("firstName", func(d *UserDTO) *string { return &d.FirstName }),
	stringField("lastName", func(d *UserDTO) *string { return &d.LastName }),
	{
		name: "birthDate",
		get: func(d UserDTO) any {
			if d.BirthDate.IsZero() {
				return nil
			}
			return d.BirthDate.String()
		},
		set: func(d *UserDTO, v any) error {
			switch val := v.(type) {
			case nil:
				d.BirthDate = user.Date{}
			case string:
				if val == "" {
					d.BirthDate = user.Date{}
					return nil
				}
				parsed, err := user.ParseDate(val)
				if err != nil {
					return err
				}
				d.BirthDate = parsed
			default:
				return fmt.Errorf("birthDate: expected a dd.MM.yyyy string, got %T", v)
			}
			return nil
		},
	},
	stringField("address", func(d *UserDTO) *string { return &d.Address }),
	stringField("phoneNumber", func(d *UserDTO) *string { return &d.PhoneNumber }),
}

func stringField(name string, ref func(*UserDTO) *string) documentField {
	return documentField{
		name: name,
		get:  func(d UserDTO) any { return *ref(&d) },
		set: func(d *UserDTO, v any) error {
			switch val := v.(type) {
			case nil:
				*ref(d) = ""
			case string:
				*ref(d) = val
			default:
				return fmt.Errorf("%s: expected a string, got %T", name, v)
			}
			return nil
		},
	}
}

func lookupField(name string) (documentField, bool) {
	for _, f := range documentFields {
		if f.name == name {
			return f, true
		}
	}
	return documentField{}, false
}

// toDocument the generic, patchable form of a user
func toDocument(dto UserDTO) map[string]any {
	doc := make(map[string]any, len(documentFields))
	for _, f := range documentFields {
		doc[f.name] = f.get(dto)
	}
	return doc
}

// fromDocument rejects unknown keys and mistyped values. Missing keys leave the
// zero value, which validation then reports.
func fromDocument(doc map[string]any) (UserDTO, error) {
	for key := range doc {
		if _, ok := lookupField(key); !ok {
			return UserDTO{}, fmt.Errorf("unknown field %q", key)
		}
	}

	var dto UserDTO
	for _, f := range documentFields {
		if err := f.set(&dto, doc[f.name]); err != nil {
			return UserDTO{}, err
		}
	}
	return dto, nil
}

// PatchApplier applies RFC 6902 patches to the external representation of a
// user. The input snapshot is never modified; a failed patch yields no output.
type PatchApplier struct{}

func NewPatchApplier() *PatchApplier {
	return &PatchApplier{}
}

// Apply returns the patched candidate. Every failure wraps ErrPatchNotApplied.
func (a *PatchApplier) Apply(current UserDTO, patch []byte) (UserDTO, error) {
	if trimmed := bytes.TrimSpace(patch); len(trimmed) == 0 || trimmed[0] != '[' {
		return UserDTO{}, notApplied("decode patch", errors.New("patch must be a JSON array of operations"))
	}
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return UserDTO{}, notApplied("decode patch", err)
	}
	if err := checkTargets(ops); err != nil {
		return UserDTO{}, notApplied("check patch", err)
	}

	doc, err := json.Marshal(toDocument(current))
	if err != nil {
		return UserDTO{}, notApplied("encode user", err)
	}
	patched, err := ops.Apply(doc)
	if err != nil {
		return UserDTO{}, notApplied("apply patch", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(patched, &fields); err != nil {
		return UserDTO{}, notApplied("decode patched user", err)
	}
	candidate, err := fromDocument(fields)
	if err != nil {
		return UserDTO{}, notApplied("decode patched user", err)
	}
	return candidate, nil
}

// checkTargets every operation must be a known RFC 6902 operation with its
// required members, addressing top-level user fields only.
func checkTargets(ops jsonpatch.Patch) error {
	for i, op := range ops {
		kind, err := member(op, "op")
		if err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
		keys := []string{"path"}
		switch kind {
		case "add", "replace", "test":
			if _, ok := op["value"]; !ok {
				return fmt.Errorf("operation %d: %s requires \"value\"", i, kind)
			}
		case "remove":
		case "move", "copy":
			keys = append(keys, "from")
		default:
			return fmt.Errorf("operation %d: unknown op %q", i, kind)
		}
		for _, key := range keys {
			pointer, err := member(op, key)
			if err != nil {
				return fmt.Errorf("operation %d: %w", i, err)
			}
			if !strings.HasPrefix(pointer, "/") {
				return fmt.Errorf("operation %d: %s %q is not a field pointer", i, key, pointer)
			}
			if _, ok := lookupField(pointer[1:]); !ok {
				return fmt.Errorf("operation %d: %s %q does not address a user field", i, key, pointer)
			}
		}
	}
	return nil
}

func member(op map[string]*json.RawMessage, key string) (string, error) {
	raw, ok := op[key]
	if !ok || raw == nil {
		return "", fmt.Errorf("missing %q", key)
	}
	var s string
	if err := json.Unmarshal(*raw, &s); err != nil {
		return "", fmt.Errorf("%q must be a string", key)
	}
	return s, nil
}

func notApplied(stage string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPatchNotApplied, stage, err)
}
