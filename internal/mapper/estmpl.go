package mapper

import "github.com/RitterHou/search-platform/internal/model"

// NewIndexTemplateView renders an index template for its form
func NewIndexTemplateView(t *model.IndexTemplate) *model.IndexTemplateView {
	if t == nil {
		t = &model.IndexTemplate{}
	}
	return &model.IndexTemplateView{
		Name:           t.Name,
		Host:           t.Host,
		Index:          t.Index,
		Type:           t.Type,
		ID:             t.ID,
		MappingJSONStr: JSONText(t.Mapping),
	}
}

// IndexTemplateFromView parses the edited mapping text. Empty fields are left
// out of the stored template.
func IndexTemplateFromView(v *model.IndexTemplateView) (*model.IndexTemplate, error) {
	if v == nil {
		return &model.IndexTemplate{}, nil
	}
	mapping, err := ParseJSONText("mapping", v.MappingJSONStr)
	if err != nil {
		return nil, err
	}
	return &model.IndexTemplate{
		Name:    v.Name,
		Host:    v.Host,
		Index:   v.Index,
		Type:    v.Type,
		ID:      v.ID,
		Mapping: mapping,
	}, nil
}
