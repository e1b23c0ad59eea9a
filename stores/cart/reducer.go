// Package cart holds the shopping cart of one session.
package cart

import "github.com/raushankrgupta/skincare-storefront/models"

type State struct {
	Items []models.CartItem `json:"items"`
}

type Action interface {
	cartAction()
}

type AddItem struct {
	Product  models.Product
	Quantity int
}

type UpdateQuantity struct {
	ItemID   string
	Quantity int
}

type RemoveItem struct {
	ItemID string
}

type ClearCart struct{}

type LoadCart struct {
	Items []models.CartItem
}

func (AddItem) cartAction()        {}
func (UpdateQuantity) cartAction() {}
func (RemoveItem) cartAction()     {}
func (ClearCart) cartAction()      {}
func (LoadCart) cartAction()       {}

// Reduce returns the next state; s is never modified.
// Every item in the result has a quantity of at least one.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddItem:
		if a.Quantity < 1 {
			return s
		}
		items := clone(s.Items)
		for i := range items {
			if items[i].ID == a.Product.ID {
				items[i].Quantity += a.Quantity
				return State{Items: items}
			}
		}
		return State{Items: append(items, models.CartItem{
			ID:       a.Product.ID,
			Product:  a.Product,
			Quantity: a.Quantity,
		})}

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(s, RemoveItem{ItemID: a.ItemID})
		}
		items := clone(s.Items)
		for i := range items {
			if items[i].ID == a.ItemID {
				items[i].Quantity = a.Quantity
			}
		}
		return State{Items: items}

	case RemoveItem:
		items := make([]models.CartItem, 0, len(s.Items))
		for _, it := range s.Items {
			if it.ID != a.ItemID {
				items = append(items, it)
			}
		}
		return State{Items: items}

	case ClearCart:
		return State{Items: []models.CartItem{}}

	case LoadCart:
		return State{Items: sanitize(a.Items)}
	}
	return s
}

// sanitize drops invalid lines and merges duplicates so loaded data keeps the invariants.
func sanitize(in []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, 0, len(in))
	index := make(map[string]int, len(in))
	for _, it := range in {
		if it.ID == "" || it.Quantity < 1 {
			continue
		}
		if i, ok := index[it.ID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		index[it.ID] = len(out)
		out = append(out, it)
	}
	return out
}

func clone(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

// TotalItems is the sum of quantities.
func (s State) TotalItems() int {
	n := 0
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of price times quantity.
func (s State) TotalPrice() int64 {
	var total int64
	for _, it := range s.Items {
		total += it.LineTotal()
	}
	return total
}
