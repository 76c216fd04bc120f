package svgclean

// Options selects the optional passes Clean runs. Each field is named
// after the pass it gates; the normalization passes and the final fixups
// remove_empty_defs and fix_xmlns_attribute always run.
type Options struct {
	RemoveTitle               bool `json:"remove_title"`
	RemoveDesc                bool `json:"remove_desc"`
	RemoveMetadata            bool `json:"remove_metadata"`
	RemoveUnusedDefs          bool `json:"remove_unused_defs"`
	RemoveInvalidStops        bool `json:"remove_invalid_stops"`
	ApplyTransformToGradients bool `json:"apply_transform_to_gradients"`
	RemoveDuplLinearGradients bool `json:"remove_dupl_linear_gradients"`
	RemoveDuplRadialGradients bool `json:"remove_dupl_radial_gradients"`
	RemoveDuplFeGaussianBlur  bool `json:"remove_dupl_fe_gaussian_blur"`
	RegroupGradientStops      bool `json:"regroup_gradient_stops"`
	MergeGradients            bool `json:"merge_gradients"`
	RemoveInvisibleElements   bool `json:"remove_invisible_elements"`
	UngroupGroups             bool `json:"ungroup_groups"`
	RemoveDefaultAttributes   bool `json:"remove_default_attributes"`
	RemoveGradientAttributes  bool `json:"remove_gradient_attributes"`
	RemoveUnreferencedIDs     bool `json:"remove_unreferenced_ids"`
	TrimIDs                   bool `json:"trim_ids"`
	RemoveVersion             bool `json:"remove_version"`
	UngroupDefs               bool `json:"ungroup_defs"`
	JoinStyleAttributes       bool `json:"join_style_attributes"`

	// RemoveXmlnsXlinkAttribute lets fix_xmlns_attribute drop an unused
	// xlink namespace declaration.
	RemoveXmlnsXlinkAttribute bool `json:"remove_xmlns_xlink_attribute"`
}

// DefaultOptions enables every pass.
func DefaultOptions() *Options {
	return &Options{
		RemoveTitle:               true,
		RemoveDesc:                true,
		RemoveMetadata:            true,
		RemoveUnusedDefs:          true,
		RemoveInvalidStops:        true,
		ApplyTransformToGradients: true,
		RemoveDuplLinearGradients: true,
		RemoveDuplRadialGradients: true,
		RemoveDuplFeGaussianBlur:  true,
		RegroupGradientStops:      true,
		MergeGradients:            true,
		RemoveInvisibleElements:   true,
		UngroupGroups:             true,
		RemoveDefaultAttributes:   true,
		RemoveGradientAttributes:  true,
		RemoveUnreferencedIDs:     true,
		TrimIDs:                   true,
		RemoveVersion:             true,
		UngroupDefs:               true,
		JoinStyleAttributes:       true,
		RemoveXmlnsXlinkAttribute: true,
	}
}

// Flags maps every option name to its field, in pipeline order. Callers
// such as command line front ends use it to set options by name.
func (o *Options) Flags() []Flag {
	return []Flag{
		{"remove_title", &o.RemoveTitle},
		{"remove_desc", &o.RemoveDesc},
		{"remove_metadata", &o.RemoveMetadata},
		{"remove_unused_defs", &o.RemoveUnusedDefs},
		{"remove_invalid_stops", &o.RemoveInvalidStops},
		{"apply_transform_to_gradients", &o.ApplyTransformToGradients},
		{"remove_dupl_linear_gradients", &o.RemoveDuplLinearGradients},
		{"remove_dupl_radial_gradients", &o.RemoveDuplRadialGradients},
		{"remove_dupl_fe_gaussian_blur", &o.RemoveDuplFeGaussianBlur},
		{"regroup_gradient_stops", &o.RegroupGradientStops},
		{"merge_gradients", &o.MergeGradients},
		{"remove_invisible_elements", &o.RemoveInvisibleElements},
		{"ungroup_groups", &o.UngroupGroups},
		{"remove_default_attributes", &o.RemoveDefaultAttributes},
		{"remove_gradient_attributes", &o.RemoveGradientAttributes},
		{"remove_unreferenced_ids", &o.RemoveUnreferencedIDs},
		{"trim_ids", &o.TrimIDs},
		{"remove_version", &o.RemoveVersion},
		{"ungroup_defs", &o.UngroupDefs},
		{"join_style_attributes", &o.JoinStyleAttributes},
		{"remove_xmlns_xlink_attribute", &o.RemoveXmlnsXlinkAttribute},
	}
}

// Flag is a named boolean option.
type Flag struct {
	Name string
	V    *bool
}
