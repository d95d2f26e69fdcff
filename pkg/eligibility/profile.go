package eligibility

// RefPlaceholder is the value written into profile-driven extra REF
// segments. Callers substitute the real reference before transmission; the
// builder deliberately leaves a visible placeholder rather than guessing.
const RefPlaceholder = "PLACEHOLDER"

// Profile captures the small per-payer/clearinghouse differences: preferred
// EQ codes, whether DMG is mandatory, whether TRN is expected, the member
// ID qualifier, and extra REF segments. Profiles are plain options injected
// into the builder; this package never reads or writes storage.
type Profile struct {
	Key                   string   `json:"key" yaml:"key"`
	DisplayName           string   `json:"display_name" yaml:"display_name"`
	IDQualifier           string   `json:"id_qualifier" yaml:"id_qualifier"`
	PreferredServiceTypes []string `json:"preferred_service_types" yaml:"preferred_service_types"`
	RequireDMG            bool     `json:"require_dmg" yaml:"require_dmg"`
	ExpectTRN             bool     `json:"expect_trn" yaml:"expect_trn"`
	ExtraRefQualifiers    []string `json:"extra_ref_qualifiers,omitempty" yaml:"extra_ref_qualifiers,omitempty"`
}

// idQualifier returns the configured member ID qualifier, defaulting to MI.
func (p Profile) idQualifier() string {
	if p.IDQualifier == "" {
		return "MI"
	}
	return p.IDQualifier
}

// DefaultProfile is the profile used when none is named.
func DefaultProfile() Profile {
	return Profile{
		Key:                   "default",
		DisplayName:           "Generic payer",
		IDQualifier:           "MI",
		PreferredServiceTypes: []string{"30"},
	}
}

// BuiltinProfiles returns the built-in profile table. A YAML profile file
// loaded by the config package shadows entries with the same key.
func BuiltinProfiles() map[string]Profile {
	return map[string]Profile{
		"default": DefaultProfile(),
		"strict_demographics": {
			Key:                   "strict_demographics",
			DisplayName:           "Payer requiring DMG",
			IDQualifier:           "MI",
			PreferredServiceTypes: []string{"30"},
			RequireDMG:            true,
		},
		"trace_required": {
			Key:                   "trace_required",
			DisplayName:           "Clearinghouse expecting TRN + REF 6P",
			IDQualifier:           "MI",
			PreferredServiceTypes: []string{"30", "98"},
			ExpectTRN:             true,
			ExtraRefQualifiers:    []string{"6P"},
		},
	}
}
