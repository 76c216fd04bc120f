package svgclean

import (
	"fmt"
	"io"

	"github.com/signadot/svgclean/debug"
	"github.com/signadot/svgclean/encode"
	"github.com/signadot/svgclean/svg"
	"github.com/signadot/svgclean/task"
)

type step struct {
	name string
	on   bool
}

// steps returns the pipeline in the order it must run. The order matters:
// normalization first, then the structural passes, attribute stripping only
// once nothing reads attributes anymore, and join_style_attributes last
// since it turns links into text.
func steps(o *Options) []step {
	return []step{
		{"resolve_gradient_attributes", true},
		{"resolve_inherit", true},
		{"fix_invalid_attributes", true},
		{"group_defs", true},

		{"remove_title", o.RemoveTitle},
		{"remove_desc", o.RemoveDesc},
		{"remove_metadata", o.RemoveMetadata},
		{"remove_unused_defs", o.RemoveUnusedDefs},
		{"remove_invalid_stops", o.RemoveInvalidStops},
		{"apply_transform_to_gradients", o.ApplyTransformToGradients},
		{"remove_dupl_linear_gradients", o.RemoveDuplLinearGradients},
		{"remove_dupl_radial_gradients", o.RemoveDuplRadialGradients},
		{"remove_dupl_fe_gaussian_blur", o.RemoveDuplFeGaussianBlur},
		{"regroup_gradient_stops", o.RegroupGradientStops},
		{"merge_gradients", o.MergeGradients},
		// transforms again: merging may have produced new candidates
		{"apply_transform_to_gradients", o.ApplyTransformToGradients},
		{"regroup_gradient_stops", o.RegroupGradientStops},
		// regrouping leaves shared nodes it regrouped again unused
		{"remove_unused_defs", o.RemoveUnusedDefs && o.RegroupGradientStops},
		{"remove_invisible_elements", o.RemoveInvisibleElements},
		{"ungroup_groups", o.UngroupGroups},

		{"remove_default_attributes", o.RemoveDefaultAttributes},
		{"remove_gradient_attributes", o.RemoveGradientAttributes},

		{"remove_unreferenced_ids", o.RemoveUnreferencedIDs},
		{"trim_ids", o.TrimIDs},
		{"remove_version", o.RemoveVersion},
		{"ungroup_defs", o.UngroupDefs},
		{"remove_empty_defs", true},
		{"fix_xmlns_attribute", true},

		{"join_style_attributes", o.JoinStyleAttributes},
	}
}

// Clean runs the enabled passes over doc in pipeline order, stopping at
// the first error. A nil opts means DefaultOptions. Clean never writes
// anything, see Write.
func Clean(doc *svg.Document, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := precleanChecks(doc); err != nil {
		return err
	}
	if debug.Links() {
		defer traceLinks(doc)()
	}
	for _, s := range steps(opts) {
		if !s.on {
			continue
		}
		if err := runStep(doc, s.name, opts); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		if debug.Passes() {
			debug.Logf("pass %s: %d elements\n", s.name, countElements(doc))
		}
	}
	return nil
}

func runStep(doc *svg.Document, name string, opts *Options) error {
	if name == "fix_xmlns_attribute" {
		return task.FixXmlnsAttribute(doc, opts.RemoveXmlnsXlinkAttribute)
	}
	p := task.Lookup(name)
	if p == nil {
		return fmt.Errorf("no pass named %q", name)
	}
	return p.Run(doc)
}

// precleanChecks verifies what every pass assumes, before any of them
// mutates doc.
func precleanChecks(doc *svg.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", ErrValidation)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("%w: no root element", ErrValidation)
	}
	if !root.Is(svg.TagSvg) {
		return fmt.Errorf("%w: root element is %s, not svg", ErrValidation, root.Name())
	}
	if err := doc.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

func traceLinks(doc *svg.Document) func() {
	onLink, onUnlink := doc.OnLink, doc.OnUnlink
	doc.OnLink = func(n *svg.Node, attr string, target *svg.Node) {
		debug.Logf("link %s %s -> %s\n", n, attr, target)
		if onLink != nil {
			onLink(n, attr, target)
		}
	}
	doc.OnUnlink = func(n *svg.Node, attr string, target *svg.Node) {
		debug.Logf("unlink %s %s -> %s\n", n, attr, target)
		if onUnlink != nil {
			onUnlink(n, attr, target)
		}
	}
	return func() {
		doc.OnLink, doc.OnUnlink = onLink, onUnlink
	}
}

func countElements(doc *svg.Document) int {
	res := 0
	for range doc.Elements() {
		res++
	}
	return res
}

// Write serializes doc to w.
func Write(doc *svg.Document, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(doc, w, opts...)
}
