// Package mockapi is an in-memory stand-in for the remote
// food-ordering API, used by the -mock demo mode and the integration
// tests. It implements the same routes and response envelope as the
// real service but keeps everything in process.
package mockapi

import (
	"net/http"
	"time"

	"food-admin/middleware"
	"food-admin/models"

	"github.com/gin-gonic/gin"
)

type Server struct {
	store *Store
}

func NewServer(store *Store) *Server {
	return &Server{store: store}
}

// Router builds the gin engine with every API route registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.GET("/api/user/all", s.getUsers)
	router.POST("/api/user/create", s.createUser)
	router.PUT("/api/user/update", s.updateUser)
	router.DELETE("/api/user/delete/:id", s.deleteUser)

	router.GET("/api/items/all", s.getItems)
	router.POST("/api/items/create", s.createItem)
	router.PUT("/api/items/update", s.updateItem)
	router.DELETE("/api/items/delete/:id", s.deleteItem)

	router.GET("/api/cart/all", s.getCarts)
	router.GET("/api/cart/getbyid/:id", s.getCartByID)
	router.POST("/api/cart/create", s.createCart)
	router.PUT("/api/cart/update", s.updateCart)
	router.PUT("/api/cart/updateQuantity", s.updateCartQuantity)
	router.PUT("/api/cart/RemoveItemsinCart", s.removeCartItem)
	router.DELETE("/api/cart/delete/:id", s.deleteCart)

	router.GET("/api/orders/all", s.getOrders)
	router.GET("/api/orders/getbyid/:id", s.getOrderByID)
	router.POST("/api/orders/create", s.createOrder)
	router.PUT("/api/orders/update", s.updateOrder)
	router.PUT("/api/orders/updateStatus", s.updateOrderStatus)
	router.DELETE("/api/orders/delete/:id", s.deleteOrder)

	return router
}

func (s *Server) getUsers(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"data": s.store.users})
}

func (s *Server) createUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and phone are required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	user := &models.User{
		ID:      s.store.newID(),
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  true,
	}
	s.store.users = append(s.store.users, user)
	c.JSON(http.StatusCreated, gin.H{"data": user})
}

func (s *Server) updateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	user := s.store.findUser(req.ID)
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	user.Name = req.Name
	user.Phone = req.Phone
	user.Address = req.Address
	user.Status = req.Status
	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (s *Server) deleteUser(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	user := s.store.findUser(models.ID(c.Param("id")))
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	user.Status = false
	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (s *Server) getItems(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"data": s.store.items})
}

func (s *Server) createItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	item := &models.Item{
		ID:          s.store.newID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Status:      true,
	}
	s.store.items = append(s.store.items, item)
	c.JSON(http.StatusCreated, gin.H{"data": item})
}

func (s *Server) updateItem(c *gin.Context) {
	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	item := s.store.findItem(req.ID)
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Image = req.Image
	item.Status = req.Status
	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) deleteItem(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	item := s.store.findItem(models.ID(c.Param("id")))
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	item.Status = false
	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) getCarts(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"data": s.store.carts})
}

func (s *Server) getCartByID(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	cart := s.store.findCart(models.ID(c.Param("id")))
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cart})
}

func (s *Server) createCart(c *gin.Context) {
	var req models.CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserID.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	cart := &models.Cart{
		ID:     s.store.newID(),
		UserID: req.UserID,
		Items:  req.FoodItems,
		Status: true,
	}
	s.store.carts = append(s.store.carts, cart)
	c.JSON(http.StatusCreated, gin.H{"data": cart})
}

func (s *Server) updateCart(c *gin.Context) {
	var req models.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	cart := s.store.findCart(req.ID)
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	cart.Items = req.FoodItems
	cart.Status = req.Status
	c.JSON(http.StatusOK, gin.H{"data": cart})
}

func (s *Server) updateCartQuantity(c *gin.Context) {
	var req models.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	cart := s.store.findCart(req.CartID)
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	next := cart.Items[:0]
	for _, line := range cart.Items {
		if line.ItemID == req.ItemID {
			line.Quantity = req.Quantity
		}
		// Lines at zero or below are removed, like everywhere else.
		if line.Quantity > 0 {
			next = append(next, line)
		}
	}
	cart.Items = next
	c.JSON(http.StatusOK, gin.H{"data": cart})
}

func (s *Server) removeCartItem(c *gin.Context) {
	var req models.RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	cart := s.store.findCart(req.CartID)
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	next := cart.Items[:0]
	for _, line := range cart.Items {
		if line.ItemID != req.ItemID {
			next = append(next, line)
		}
	}
	cart.Items = next
	c.JSON(http.StatusOK, gin.H{"data": cart})
}

func (s *Server) deleteCart(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	cart := s.store.findCart(models.ID(c.Param("id")))
	if cart == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	cart.Status = false
	c.JSON(http.StatusOK, gin.H{"data": cart})
}

func (s *Server) getOrders(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"data": s.store.orders})
}

func (s *Server) getOrderByID(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	order := s.store.findOrder(models.ID(c.Param("id")))
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": order})
}

// createOrder turns a cart into an order: the cart's lines are
// snapshotted, its total priced against the current menu, and the
// cart itself is consumed.
func (s *Server) createOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	cart := s.store.findCart(req.CartID)
	if cart == nil || !cart.Status {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
		return
	}
	if len(cart.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	items := make([]models.CartLine, len(cart.Items))
	copy(items, cart.Items)

	order := &models.Order{
		ID:        s.store.newID(),
		CartID:    cart.ID,
		UserID:    req.UserID,
		Status:    models.StatusPending,
		Total:     s.store.cartTotal(cart),
		Items:     items,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	s.store.orders = append(s.store.orders, order)
	cart.Status = false
	c.JSON(http.StatusCreated, gin.H{"data": order})
}

func (s *Server) updateOrder(c *gin.Context) {
	var req models.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	order := s.store.findOrder(req.ID)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if req.OrderStatus != "" {
		order.Status = req.OrderStatus
	}
	order.Active = req.Status
	c.JSON(http.StatusOK, gin.H{"data": order})
}

func (s *Server) updateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	order := s.store.findOrder(req.ID)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	order.Status = req.OrderStatus
	c.JSON(http.StatusOK, gin.H{"data": order})
}

func (s *Server) deleteOrder(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	order := s.store.findOrder(models.ID(c.Param("id")))
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	order.Active = false
	c.JSON(http.StatusOK, gin.H{"data": order})
}
