// ABOUTME: FoodRecord model for the static food catalog.
// ABOUTME: Calories plus optional macro grams, immutable once defined.
package models

// FoodRecord describes one catalog food item.
type FoodRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Calories    int      `json:"calories" yaml:"calories"`
	Portion     string   `json:"portion" yaml:"portion"`
	PortionSize float64  `json:"portion_size" yaml:"portion_size"`
	PortionUnit string   `json:"portion_unit" yaml:"portion_unit"`
	ImageURL    string   `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Protein     *float64 `json:"protein,omitempty" yaml:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty" yaml:"carbs,omitempty"`
	Fat         *float64 `json:"fat,omitempty" yaml:"fat,omitempty"`
	Fiber       *float64 `json:"fiber,omitempty" yaml:"fiber,omitempty"`
}

// Grams returns a pointer to v, for building macro fields.
func Grams(v float64) *float64 {
	return &v
}

// ProteinGrams returns protein grams, zero when absent.
func (f FoodRecord) ProteinGrams() float64 { return deref(f.Protein) }

// CarbGrams returns carbohydrate grams, zero when absent.
func (f FoodRecord) CarbGrams() float64 { return deref(f.Carbs) }

// FatGrams returns fat grams, zero when absent.
func (f FoodRecord) FatGrams() float64 { return deref(f.Fat) }

// FiberGrams returns fiber grams, zero when absent.
func (f FoodRecord) FiberGrams() float64 { return deref(f.Fiber) }

// Clone returns a deep copy so macro pointers are not shared.
func (f FoodRecord) Clone() FoodRecord {
	c := f
	c.Protein = clonePtr(f.Protein)
	c.Carbs = clonePtr(f.Carbs)
	c.Fat = clonePtr(f.Fat)
	c.Fiber = clonePtr(f.Fiber)
	return c
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
