// internal/interfaces/console/checkout.go
package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-faster/errors"
	"github.com/your-org/petshop-catalog/internal/domain/checkout"
)

// checkoutCart handles "checkout"
func (s *Shell) checkoutCart([]string) error {
	result := s.checkout.Attempt()
	if !result.OK() {
		if errors.Is(result.Err, checkout.ErrEmptyCart) {
			fmt.Fprintln(s.out, "Nothing to check out: your cart is empty.")
			return nil
		}
		return result.Err
	}

	s.printReceipt(result.Receipt)
	return nil
}

func (s *Shell) printReceipt(r *checkout.Receipt) {
	fmt.Fprintf(s.out, "Order %s placed %s\n", r.OrderNumber, r.CompletedAt.Format("Jan 2, 2006 15:04"))

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, line := range r.Lines {
		fmt.Fprintf(w, "  %s\tx%d\t%s\n", line.Name, line.Quantity, s.money.Format(line.LineTotal))
	}
	w.Flush()

	fmt.Fprintf(s.out, "Paid %s for %d item(s). Thank you!\n", s.money.Format(r.Total), r.TotalItems)
}
