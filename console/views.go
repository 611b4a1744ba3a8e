package console

import (
	"context"
	"fmt"
	"text/tabwriter"

	"food-admin/models"
)

func (con *Console) renderHelp() {
	fmt.Fprint(con.out, `Views:
  dashboard                              counts of users, items and orders
  users | items | cart | orders          show a view
Users:
  user select <id>                       pick the acting user
  user save <name>;<phone>;<address>     update selected user, or create one
  user clear | user delete
Items:
  item select <id>
  item save <name>;<desc>;<price>;<image>
  item clear | item delete
Cart:
  add <itemID>                           add one of an item to the cart
  inc <itemID> | dec <itemID>            change a line's quantity
  checkout                               place the order
Orders:
  track | stop                           start/stop polling the active order
  simulate on|off                        toggle simulated status updates
Other:
  refresh | help | quit
`)
}

func (con *Console) renderDashboard(ctx context.Context) {
	orders, err := con.orders.ListOrders(ctx)
	if err != nil {
		fmt.Fprintf(con.out, "Failed to load orders: %v\n", err)
	}
	fmt.Fprintf(con.out, "Users: %d  Items: %d  Orders: %d\n",
		len(con.users.Users()), len(con.items.Items()), len(orders))
}

func (con *Console) renderUsers() {
	users := con.users.Users()
	if len(users) == 0 {
		fmt.Fprintln(con.out, `No users yet. Create one with "user save".`)
		return
	}
	selected := con.users.Selected()

	w := tabwriter.NewWriter(con.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tNAME\tPHONE\tADDRESS")
	for _, u := range users {
		marker := ""
		if u.ID == selected {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t#%s\t%s\t%s\t%s\n", marker, u.ID, u.Name, u.Phone, u.Address)
	}
	w.Flush()
}

func (con *Console) renderItems() {
	items := con.items.Items()
	if len(items) == 0 {
		fmt.Fprintln(con.out, `No items yet. Create one with "item save".`)
		return
	}
	selected := con.items.Selected()

	w := tabwriter.NewWriter(con.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tNAME\tPRICE\tDESCRIPTION")
	for _, it := range items {
		marker := ""
		if it.ID == selected {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t#%s\t%s\t%s\t%s\n", marker, it.ID, it.Name, it.Price.StringFixed(2), it.Description)
	}
	w.Flush()
}

func (con *Console) renderCart() {
	if con.cart.Saving() {
		fmt.Fprintln(con.out, "(a cart update is still in flight)")
	}
	items := con.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(con.out, "Your cart is empty.")
		return
	}

	w := tabwriter.NewWriter(con.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, ci := range items {
		fmt.Fprintf(w, "#%s\t%s\t%s\t%d\t%s\n", ci.ItemID, ci.Name, ci.Price.StringFixed(2), ci.Quantity, ci.Subtotal().StringFixed(2))
	}
	w.Flush()
	fmt.Fprintf(con.out, "Total: %s\n", con.cart.Total().StringFixed(2))
	if con.cart.CartID().IsZero() {
		fmt.Fprintln(con.out, "Cart will be created on the backend on first add.")
	}
}

func (con *Console) renderOrders(ctx context.Context) {
	if id := con.orders.OrderID(); id.IsZero() {
		fmt.Fprintln(con.out, "No active order yet. Place an order to track it.")
	} else {
		fmt.Fprintf(con.out, "Order #%s\n", id)
		snapshot, pollErr := con.orders.Snapshot()
		if snapshot != nil {
			fmt.Fprintf(con.out, "Status: %s  Total: %s\n", snapshot.Status, snapshot.Total.StringFixed(2))
		}
		if pollErr != nil {
			fmt.Fprintf(con.out, "Error: %v\n", pollErr)
		}
	}

	orders, err := con.orders.ListOrders(ctx)
	if err != nil {
		fmt.Fprintf(con.out, "Failed to load orders: %v\n", err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(con.out, "No orders found.")
		return
	}

	known := con.items.Items()
	for _, order := range orders {
		id := order.ID.String()
		if id == "" {
			// Entries without an identifier still render their other fields.
			id = "?"
		}
		fmt.Fprintf(con.out, "Order #%s  user %s  %s  total %s\n", id, order.UserID, order.Status, order.Total.StringFixed(2))
		if !order.CreatedAt.IsZero() {
			fmt.Fprintf(con.out, "  placed %s\n", order.CreatedAt.Local().Format("2006-01-02 15:04"))
		}
		for _, line := range order.Items {
			ci := models.DisplayCartItem(line, known)
			fmt.Fprintf(con.out, "  %s x%d @ %s\n", ci.Name, ci.Quantity, ci.Price.StringFixed(2))
		}
	}
}
