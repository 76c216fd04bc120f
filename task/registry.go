package task

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/signadot/svgclean/svg"
)

// Pass is a named document rewrite.
type Pass struct {
	Name string
	Doc  string
	Run  func(*svg.Document) error
}

func (p *Pass) String() string { return p.Name }

var (
	mu    sync.RWMutex
	d     = map[string]*Pass{}
	order []string
)

var ErrPassExists = errors.New("pass exists")

// Register adds p to the registry. Names are unique.
func Register(p *Pass) error {
	mu.Lock()
	defer mu.Unlock()
	if _, present := d[p.Name]; present {
		return fmt.Errorf("%s: %w", p.Name, ErrPassExists)
	}
	d[p.Name] = p
	order = append(order, p.Name)
	return nil
}

func Lookup(name string) *Pass {
	mu.RLock()
	defer mu.RUnlock()
	return d[name]
}

// Passes returns every registered pass in registration order.
func Passes() []*Pass {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]*Pass, 0, len(order))
	for _, name := range order {
		res = append(res, d[name])
	}
	return res
}

// Names returns the sorted names of the registered passes.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(slices.Values(order))
}

func init() {
	for _, p := range []*Pass{
		{Name: "resolve_gradient_attributes", Doc: "copy attributes gradients inherit through xlink:href", Run: ResolveGradientAttributes},
		{Name: "resolve_inherit", Doc: "replace 'inherit' values by the inherited value", Run: ResolveInherit},
		{Name: "fix_invalid_attributes", Doc: "fix stop offsets and dangling links", Run: FixInvalidAttributes},
		{Name: "group_defs", Doc: "move definitions into a single defs element", Run: GroupDefs},
		{Name: "remove_title", Doc: "remove title elements", Run: RemoveElements(svg.TagTitle)},
		{Name: "remove_desc", Doc: "remove desc elements", Run: RemoveElements(svg.TagDesc)},
		{Name: "remove_metadata", Doc: "remove metadata elements", Run: RemoveElements(svg.TagMetadata)},
		{Name: "remove_unused_defs", Doc: "remove unreferenced definitions", Run: RemoveUnusedDefs},
		{Name: "remove_invalid_stops", Doc: "remove redundant gradient stops", Run: RemoveInvalidStops},
		{Name: "apply_transform_to_gradients", Doc: "fold simple gradient transforms into coordinates", Run: ApplyTransformToGradients},
		{Name: "remove_dupl_linear_gradients", Doc: "merge equal linear gradients", Run: RemoveDuplLinearGradients},
		{Name: "remove_dupl_radial_gradients", Doc: "merge equal radial gradients", Run: RemoveDuplRadialGradients},
		{Name: "remove_dupl_fe_gaussian_blur", Doc: "merge equal blur filters", Run: RemoveDuplFeGaussianBlur},
		{Name: "regroup_gradient_stops", Doc: "share equal stop lists between gradients", Run: RegroupGradientStops},
		{Name: "merge_gradients", Doc: "merge gradients into their only user", Run: MergeGradients},
		{Name: "remove_invisible_elements", Doc: "remove elements that are never rendered", Run: RemoveInvisibleElements},
		{Name: "ungroup_groups", Doc: "remove groups without attributes", Run: UngroupGroups},
		{Name: "remove_default_attributes", Doc: "remove attributes set to their default", Run: RemoveDefaultAttributes},
		{Name: "remove_gradient_attributes", Doc: "remove attributes inherited through xlink:href", Run: RemoveGradientAttributes},
		{Name: "remove_unreferenced_ids", Doc: "clear ids nothing links to", Run: RemoveUnreferencedIDs},
		{Name: "trim_ids", Doc: "rename ids to the shortest free names", Run: TrimIDs},
		{Name: "remove_version", Doc: "remove version and baseProfile", Run: RemoveVersion},
		{Name: "ungroup_defs", Doc: "hoist referenced definitions out of defs", Run: UngroupDefs},
		{Name: "remove_empty_defs", Doc: "remove defs without children", Run: RemoveEmptyDefs},
		{Name: "fix_xmlns_attribute", Doc: "declare the xlink namespace when used", Run: func(doc *svg.Document) error {
			return FixXmlnsAttribute(doc, false)
		}},
		{Name: "join_style_attributes", Doc: "fold presentation attributes into style", Run: JoinStyleAttributes},
	} {
		if err := Register(p); err != nil {
			panic(err)
		}
	}
}
