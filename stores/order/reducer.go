// Package order keeps a session's placed orders and the order being viewed.
package order

import "github.com/raushankrgupta/skincare-storefront/models"

type State struct {
	Orders  []models.Order `json:"orders"`
	Current *models.Order  `json:"current_order,omitempty"`
	Loading bool           `json:"is_loading"`
}

type Action interface {
	orderAction()
}

type CreateOrder struct{ Order models.Order }

type UpdateOrderStatus struct {
	OrderID string
	Status  models.OrderStatus
}

type AddPaymentProof struct {
	OrderID      string
	PaymentProof string
}

type AddTrackingNumber struct {
	OrderID        string
	TrackingNumber string
}

type SetCurrentOrder struct{ Order *models.Order }

type LoadOrders struct{ Orders []models.Order }

type SetLoading struct{ Loading bool }

func (CreateOrder) orderAction()       {}
func (UpdateOrderStatus) orderAction() {}
func (AddPaymentProof) orderAction()   {}
func (AddTrackingNumber) orderAction() {}
func (SetCurrentOrder) orderAction()   {}
func (LoadOrders) orderAction()        {}
func (SetLoading) orderAction()        {}

// Reduce returns the next state. Orders are matched by their external orderId and
// the current order is patched alongside the list.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case CreateOrder:
		o := a.Order.Clone()
		orders := make([]models.Order, 0, len(s.Orders)+1)
		orders = append(orders, o)
		orders = append(orders, s.Orders...)
		cur := o.Clone()
		return State{Orders: orders, Current: &cur, Loading: s.Loading}

	case UpdateOrderStatus:
		return patch(s, a.OrderID, func(o *models.Order) {
			o.Status = a.Status
		})

	case AddPaymentProof:
		return patch(s, a.OrderID, func(o *models.Order) {
			o.PaymentProof = a.PaymentProof
			o.Status = models.OrderStatusPaid
		})

	case AddTrackingNumber:
		return patch(s, a.OrderID, func(o *models.Order) {
			o.TrackingNumber = a.TrackingNumber
			o.Status = models.OrderStatusShipped
		})

	case SetCurrentOrder:
		next := s
		if a.Order == nil {
			next.Current = nil
		} else {
			cur := a.Order.Clone()
			next.Current = &cur
		}
		return next

	case LoadOrders:
		next := s
		next.Orders = make([]models.Order, len(a.Orders))
		for i, o := range a.Orders {
			next.Orders[i] = o.Clone()
		}
		return next

	case SetLoading:
		next := s
		next.Loading = a.Loading
		return next
	}
	return s
}

func patch(s State, orderID string, apply func(*models.Order)) State {
	next := State{Loading: s.Loading, Orders: make([]models.Order, len(s.Orders))}
	for i, o := range s.Orders {
		next.Orders[i] = o
		if o.OrderID == orderID {
			apply(&next.Orders[i])
		}
	}
	if s.Current != nil {
		cur := s.Current.Clone()
		if cur.OrderID == orderID {
			apply(&cur)
		}
		next.Current = &cur
	}
	return next
}

func find(orders []models.Order, orderID string) (models.Order, bool) {
	for _, o := range orders {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}
