package order

import (
	"fmt"
	"strings"
)

// Notification copy. HTML bodies are string-built per message; there is no
// templating engine behind these.

var statusMessages = map[Status]string{
	StatusConfirmed:      "✓ Your order has been confirmed!",
	StatusPreparing:      "👨‍🍳 We're preparing your rolls!",
	StatusOutForDelivery: "🛵 Your order is on the way!",
	StatusDelivered:      "✓ Order delivered! Enjoy!",
}

func adminOrderSMS(o *Order, itemList string) string {
	return fmt.Sprintf(
		"🌯 NEW ORDER - %s\n\n%s\n%s\nTotal: €%.2f\nZone: %s\nDelivery: %s",
		o.OrderID, o.Customer.Name, itemList, o.Total, o.Customer.Zone, o.Delivery.TimeWindow,
	)
}

func customerOrderSMS(o *Order) string {
	return fmt.Sprintf(
		"🌯 LOCO DHAASU - Order confirmed!\n\nOrder ID: %s\nTotal: €%.2f\nDelivery: %s\n\nTrack updates at: locodhaasu.com/orders",
		o.OrderID, o.Total, o.Delivery.TimeWindow,
	)
}

func adminOrderEmail(o *Order) (subject, html string) {
	var b strings.Builder

	fmt.Fprintf(&b, "<h2>New Order: %s</h2>", o.OrderID)
	fmt.Fprintf(&b, "<p><strong>Customer:</strong> %s</p>", o.Customer.Name)
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", o.Customer.Phone)
	email := o.Customer.Email
	if email == "" {
		email = "Not provided"
	}
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", email)
	fmt.Fprintf(&b, "<p><strong>Address:</strong> %s</p>", o.Customer.Address)
	fmt.Fprintf(&b, "<p><strong>Zone:</strong> %s</p>", o.Customer.Zone)
	b.WriteString("<h3>Items:</h3><ul>")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "<li>%dx %s - €%.2f</li>", item.Quantity, item.RollType, item.Price*float64(item.Quantity))
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p><strong>Total:</strong> €%.2f</p>", o.Total)
	fmt.Fprintf(&b, "<p><strong>Delivery Time:</strong> %s</p>", o.Delivery.TimeWindow)
	if o.SpecialInstructions != "" {
		fmt.Fprintf(&b, "<p><strong>Special Instructions:</strong> %s</p>", o.SpecialInstructions)
	}
	fmt.Fprintf(&b, "<p><small>Order placed: %s</small></p>", o.CreatedAt.Format("02 Jan 2006 15:04"))

	return fmt.Sprintf("New Order - %s", o.OrderID), b.String()
}

func customerOrderEmail(o *Order) (subject, html string) {
	var b strings.Builder

	b.WriteString("<h2>Order Confirmed! 🌯</h2>")
	fmt.Fprintf(&b, "<p>Hi %s,</p>", o.Customer.Name)
	b.WriteString("<p>Your order has been received and we're getting started!</p>")
	b.WriteString("<h3>Order Details:</h3>")
	fmt.Fprintf(&b, "<p><strong>Order ID:</strong> %s</p>", o.OrderID)
	b.WriteString("<ul>")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "<li>%dx %s</li>", item.Quantity, item.RollType)
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p><strong>Total:</strong> €%.2f</p>", o.Total)
	fmt.Fprintf(&b, "<p><strong>Estimated Delivery:</strong> %s</p>", o.Delivery.TimeWindow)
	b.WriteString("<p>You'll receive updates via SMS. Thank you for your order!</p>")
	b.WriteString("<p><strong>LOCO DHAASU Team</strong></p>")

	return "Order Confirmed - LOCO DHAASU", b.String()
}

func statusUpdateSMS(orderID string, status Status) string {
	return fmt.Sprintf("%s\nOrder: %s", statusMessages[status], orderID)
}

func statusUpdateEmail(orderID string, status Status) (subject, html string) {
	msg := statusMessages[status]
	return fmt.Sprintf("Order Update - %s", msg),
		fmt.Sprintf("<p>%s</p><p>Order ID: %s</p>", msg, orderID)
}
