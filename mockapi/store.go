package mockapi

import (
	"strconv"
	"sync"

	"food-admin/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// Store is the in-memory backing state of the mock API. Slices keep
// insertion order so list endpoints return records in creation order,
// which the client relies on for most-recent-cart selection.
type Store struct {
	mu     sync.Mutex
	nextID int64
	users  []*models.User
	items  []*models.Item
	carts  []*models.Cart
	orders []*models.Order
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) newID() models.ID {
	s.nextID++
	return models.ID(strconv.FormatInt(s.nextID, 10))
}

// Seed populates the store with fake users and menu items.
func (s *Store) Seed(userCount, itemCount int) {
	f := gofakeit.New(0)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < userCount; i++ {
		s.users = append(s.users, &models.User{
			ID:      s.newID(),
			Name:    f.Name(),
			Phone:   f.Phone(),
			Address: f.Address().Address,
			Status:  true,
		})
	}
	for i := 0; i < itemCount; i++ {
		s.items = append(s.items, &models.Item{
			ID:          s.newID(),
			Name:        f.Dinner(),
			Description: f.Sentence(6),
			Price:       decimal.NewFromFloat(f.Price(40, 400)).Round(0),
			Image:       f.URL(),
			Status:      true,
		})
	}
}

func (s *Store) findUser(id models.ID) *models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) findItem(id models.ID) *models.Item {
	for _, it := range s.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

func (s *Store) findCart(id models.ID) *models.Cart {
	for _, c := range s.carts {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (s *Store) findOrder(id models.ID) *models.Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// cartTotal prices a cart's lines against the current menu.
func (s *Store) cartTotal(cart *models.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, line := range cart.Items {
		if it := s.findItem(line.ItemID); it != nil {
			total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}
	}
	return total
}
