// Package console is the operator-facing terminal UI: a command loop
// over the view controllers with dashboard, user, item, cart and
// order views.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"food-admin/config"
	"food-admin/controllers"
	"food-admin/models"
)

type Console struct {
	cfg    *config.Config
	users  *controllers.UserController
	items  *controllers.ItemController
	cart   *controllers.CartController
	orders *controllers.OrderController

	in  io.Reader
	out io.Writer

	stopPoll func()
	stopSim  func()
}

func New(cfg *config.Config, users *controllers.UserController, items *controllers.ItemController, cart *controllers.CartController, orders *controllers.OrderController, in io.Reader, out io.Writer) *Console {
	return &Console{
		cfg:    cfg,
		users:  users,
		items:  items,
		cart:   cart,
		orders: orders,
		in:     in,
		out:    out,
	}
}

// Run loads initial data and processes commands until EOF or quit.
func (con *Console) Run(ctx context.Context) error {
	con.refresh(ctx)
	con.renderDashboard(ctx)
	fmt.Fprintln(con.out, `Type "help" for the command list.`)

	scanner := bufio.NewScanner(con.in)
	for {
		fmt.Fprint(con.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		con.dispatch(ctx, line)
	}

	con.teardown()
	return scanner.Err()
}

func (con *Console) dispatch(ctx context.Context, line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		con.renderHelp()
	case "dashboard":
		con.renderDashboard(ctx)
	case "users":
		con.renderUsers()
	case "user":
		con.userCommand(ctx, args)
	case "items":
		con.renderItems()
	case "item":
		con.itemCommand(ctx, args)
	case "cart":
		con.renderCart()
	case "add":
		con.addToCart(ctx, args)
	case "inc":
		con.changeQuantity(ctx, args, 1)
	case "dec":
		con.changeQuantity(ctx, args, -1)
	case "checkout":
		con.checkout(ctx)
	case "orders":
		con.renderOrders(ctx)
	case "track":
		con.startTracking(ctx)
	case "stop":
		con.teardown()
		fmt.Fprintln(con.out, "Stopped order tracking.")
	case "simulate":
		con.toggleSimulate(args)
	case "refresh":
		con.refresh(ctx)
		fmt.Fprintln(con.out, "Reloaded users, items and cart.")
	default:
		fmt.Fprintf(con.out, "Unknown command %q. Type \"help\".\n", cmd)
	}
}

// refresh reloads users and items and re-hydrates the cart for the
// acting user. Load failures are shown inline; the views keep
// whatever state they had.
func (con *Console) refresh(ctx context.Context) {
	if err := con.users.Load(ctx); err != nil {
		fmt.Fprintf(con.out, "Failed to load users: %v\n", err)
	}
	if err := con.items.Load(ctx); err != nil {
		fmt.Fprintf(con.out, "Failed to load menu items: %v\n", err)
	}
	con.cart.Hydrate(ctx, con.users.Selected(), con.items.Items())
}

func (con *Console) userCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		con.renderUsers()
		return
	}
	switch args[0] {
	case "select":
		if len(args) < 2 {
			fmt.Fprintln(con.out, "Usage: user select <id>")
			return
		}
		con.users.Select(models.ID(args[1]))
		con.cart.Hydrate(ctx, con.users.Selected(), con.items.Items())
		fmt.Fprintf(con.out, "Acting user is now #%s.\n", args[1])
	case "save":
		name, phone, address := splitSemicolon(strings.Join(args[1:], " "), 3)
		con.report(con.users.Save(ctx, name, phone, address, true))
	case "clear":
		con.users.Select("")
		fmt.Fprintln(con.out, "Selection cleared; \"user save\" now creates a new user.")
	case "delete":
		con.report(con.users.Delete(ctx))
	default:
		fmt.Fprintln(con.out, "Usage: user select <id> | user save <name>;<phone>;<address> | user clear | user delete")
	}
}

func (con *Console) itemCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		con.renderItems()
		return
	}
	switch args[0] {
	case "select":
		if len(args) < 2 {
			fmt.Fprintln(con.out, "Usage: item select <id>")
			return
		}
		con.items.Select(models.ID(args[1]))
		fmt.Fprintf(con.out, "Selected item #%s for editing.\n", args[1])
	case "save":
		name, description, price, image := splitSemicolon4(strings.Join(args[1:], " "))
		con.report(con.items.Save(ctx, con.users.Selected(), name, description, price, image, true))
	case "clear":
		con.items.Select("")
		fmt.Fprintln(con.out, "Selection cleared; \"item save\" now creates a new item.")
	case "delete":
		con.report(con.items.Delete(ctx, con.users.Selected()))
	default:
		fmt.Fprintln(con.out, "Usage: item select <id> | item save <name>;<desc>;<price>;<image> | item clear | item delete")
	}
}

func (con *Console) addToCart(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(con.out, "Usage: add <itemID>")
		return
	}
	item, ok := con.items.Find(models.ID(args[0]))
	if !ok {
		fmt.Fprintf(con.out, "No menu item #%s.\n", args[0])
		return
	}
	con.reportCartMutation(ctx, con.cart.AddItem(ctx, con.users.Selected(), item))
}

func (con *Console) changeQuantity(ctx context.Context, args []string, delta int) {
	if len(args) < 1 {
		fmt.Fprintln(con.out, "Usage: inc|dec <itemID>")
		return
	}
	con.reportCartMutation(ctx, con.cart.ChangeQuantity(ctx, con.users.Selected(), models.ID(args[0]), delta))
}

// reportCartMutation prints the outcome of a cart write. A failed
// write leaves optimistic local state flagged dirty, so the cart is
// force re-hydrated instead of trusted.
func (con *Console) reportCartMutation(ctx context.Context, err error) {
	if err == nil {
		con.renderCart()
		return
	}
	con.report(err)
	if con.cart.Dirty() {
		con.cart.Hydrate(ctx, con.users.Selected(), con.items.Items())
		fmt.Fprintln(con.out, "Cart re-synced from the server after the failed write.")
	}
}

func (con *Console) checkout(ctx context.Context) {
	if err := con.orders.PlaceOrder(ctx, con.users.Selected(), con.cart); err != nil {
		con.report(err)
		return
	}
	fmt.Fprintf(con.out, "Order #%s placed.\n", con.orders.OrderID())
	con.startTracking(ctx)
}

func (con *Console) startTracking(ctx context.Context) {
	if con.orders.OrderID().IsZero() {
		fmt.Fprintln(con.out, "No active order yet. Place an order to track it.")
		return
	}
	con.teardown()
	con.stopPoll = con.orders.StartPolling(ctx)
	con.stopSim = con.orders.StartSimulation(ctx, con.users.Selected())
	if con.orders.Simulate() {
		fmt.Fprintf(con.out, "Tracking order (polling every %s + simulated status updates).\n", con.cfg.PollInterval)
	} else {
		fmt.Fprintf(con.out, "Tracking order (polling every %s).\n", con.cfg.PollInterval)
	}
}

func (con *Console) toggleSimulate(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		fmt.Fprintln(con.out, "Usage: simulate on|off")
		return
	}
	enabled := args[0] == "on"
	con.orders.SetSimulate(enabled)
	if !enabled && con.stopSim != nil {
		con.stopSim()
		con.stopSim = nil
	}
	fmt.Fprintf(con.out, "Status simulation %s. Takes effect on the next \"track\".\n", args[0])
}

// report prints an error: validation failures as blocking messages,
// everything else as inline error text.
func (con *Console) report(err error) {
	if err == nil {
		fmt.Fprintln(con.out, "OK")
		return
	}
	var verr *controllers.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(con.out, "!! %s\n", verr.Message)
		return
	}
	fmt.Fprintf(con.out, "Error: %v\n", err)
}

// teardown stops the polling and simulation loops if they run.
func (con *Console) teardown() {
	if con.stopPoll != nil {
		con.stopPoll()
		con.stopPoll = nil
	}
	if con.stopSim != nil {
		con.stopSim()
		con.stopSim = nil
	}
}

func splitSemicolon(s string, n int) (a, b, c string) {
	parts := strings.SplitN(s, ";", n)
	for len(parts) < n {
		parts = append(parts, "")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])
}

func splitSemicolon4(s string) (a, b, c, d string) {
	parts := strings.SplitN(s, ";", 4)
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), strings.TrimSpace(parts[3])
}
