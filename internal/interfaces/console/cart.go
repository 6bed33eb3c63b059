// internal/interfaces/console/cart.go
package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// addToCart handles "add <ref> [qty]"
func (s *Shell) addToCart(args []string) error {
	qty, err := parseQuantity(args, 1, 1)
	if err != nil {
		return err
	}

	req := AddToCartRequest{Ref: arg(args, 0), Quantity: qty}
	if err := s.validate.Struct(req); err != nil {
		return errors.Wrap(err, "invalid request data")
	}

	item, err := s.resolve(req.Ref)
	if err != nil {
		return err
	}

	if inCart := s.cart.Quantity(item.ID) + req.Quantity; inCart > item.Stock {
		fmt.Fprintf(s.out, "Note: only %d of %s in stock; checkout will take what is left.\n", item.Stock, item.Name)
	}

	return s.cart.AddItem(item.ID, req.Quantity)
}

// updateCartItem handles "set <ref> <qty>"
func (s *Shell) updateCartItem(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: set <#|id> <qty>")
	}
	qty, err := parseQuantity(args, 1, 0)
	if err != nil {
		return err
	}

	req := UpdateCartItemRequest{Ref: arg(args, 0), Quantity: qty}
	if err := s.validate.Struct(req); err != nil {
		return errors.Wrap(err, "invalid request data")
	}

	item, err := s.resolve(req.Ref)
	if err != nil {
		return err
	}

	s.cart.UpdateQuantity(item.ID, req.Quantity)
	return nil
}

// removeFromCart handles "remove <ref>"
func (s *Shell) removeFromCart(args []string) error {
	item, err := s.resolve(arg(args, 0))
	if err != nil {
		return err
	}

	s.cart.RemoveItem(item.ID)
	return nil
}

// clearCart handles "clear"
func (s *Shell) clearCart([]string) error {
	s.cart.Clear()
	return nil
}

// showCart handles "cart"
func (s *Shell) showCart([]string) error {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(s.out, "Your cart is empty.")
		return nil
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tQTY\tUNIT PRICE\tSUBTOTAL")
	for _, line := range lines {
		item, ok := s.catalog.FindByID(line.ItemID)
		if !ok {
			fmt.Fprintf(w, "%s\t%d\t-\t-\n", line.ItemID, line.Quantity)
			continue
		}
		subtotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", item.Name, line.Quantity, s.money.Format(item.Price), s.money.Format(subtotal))
	}
	w.Flush()

	totals := s.cart.Totals()
	fmt.Fprintf(s.out, "Total: %d item(s), %s\n", totals.TotalQuantity, s.money.Format(totals.SubTotal))
	return nil
}
