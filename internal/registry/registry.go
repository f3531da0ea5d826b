package registry

import "veriflow/internal/models"

// Directory resolves company ids to display metadata. The mapping is
// static, finite and read-only; lookup is the only way it can fail.
type Directory interface {
	Lookup(id string) (models.Company, bool)
	All() []models.Company
}

// Static is an in-memory Directory over a fixed company list.
type Static struct {
	byID  map[string]models.Company
	order []models.Company
}

// NewStatic builds a Directory from the given companies. Later duplicates
// of an id win, matching map semantics; the fixed directory has none.
func NewStatic(companies []models.Company) *Static {
	s := &Static{byID: make(map[string]models.Company, len(companies))}
	for _, c := range companies {
		s.byID[c.ID] = c
		s.order = append(s.order, c)
	}
	return s
}

// Lookup returns the company for id, or false if the id is unknown.
func (s *Static) Lookup(id string) (models.Company, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// All returns the companies in directory order.
func (s *Static) All() []models.Company {
	out := make([]models.Company, len(s.order))
	copy(out, s.order)
	return out
}

// Default returns the built-in company directory.
func Default() *Static {
	return NewStatic([]models.Company{
		{ID: "abc-logistics", Name: "ABC Logistics", ShortName: "ABC", Color: "hsl(199 89% 48%)", Icon: "🚚"},
		{ID: "xyz-transport", Name: "XYZ Transport", ShortName: "XYZ", Color: "hsl(262 83% 58%)", Icon: "🚛"},
		{ID: "swift-cargo", Name: "Swift Cargo", ShortName: "SWC", Color: "hsl(142 76% 36%)", Icon: "📦"},
		{ID: "global-fleet", Name: "Global Fleet Services", ShortName: "GFS", Color: "hsl(38 92% 50%)", Icon: "🌐"},
		{ID: "prime-movers", Name: "Prime Movers Inc", ShortName: "PMI", Color: "hsl(346 77% 50%)", Icon: "🏎️"},
		{ID: "metro-transit", Name: "Metro Transit Co", ShortName: "MTC", Color: "hsl(172 66% 50%)", Icon: "🚌"},
	})
}
