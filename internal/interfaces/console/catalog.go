// internal/interfaces/console/catalog.go
package console

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/go-faster/errors"
	"github.com/your-org/petshop-catalog/internal/domain/catalog"
)

// listItems handles "list [sort]"
func (s *Shell) listItems(args []string) error {
	key, err := catalog.ParseSortKey(arg(args, 0))
	if err != nil {
		return err
	}

	s.render(catalog.Sort(s.catalog.GetAll(), key))
	return nil
}

// searchItems handles "search ..."
func (s *Shell) searchItems(args []string) error {
	req := parseSearchRequest(args)
	if err := s.validate.Struct(req); err != nil {
		return errors.Wrap(err, "invalid search")
	}

	criteria, key, err := req.criteria()
	if err != nil {
		return err
	}

	items := catalog.Sort(s.catalog.Filter(criteria), key)
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items match your search.")
	}
	s.render(items)
	return nil
}

// showItem handles "show <ref>"
func (s *Shell) showItem(args []string) error {
	item, err := s.resolve(arg(args, 0))
	if err != nil {
		return err
	}

	shipping := "standard rates"
	if item.FreeShipping {
		shipping = "free"
	}

	fmt.Fprintf(s.out, "%s by %s\n", item.Name, item.Brand)
	fmt.Fprintf(s.out, "  ID:        %s\n", item.ID)
	fmt.Fprintf(s.out, "  Category:  %s\n", item.Category)
	fmt.Fprintf(s.out, "  Price:     %s\n", s.money.Format(item.Price))
	fmt.Fprintf(s.out, "  Stock:     %d\n", item.Stock)
	fmt.Fprintf(s.out, "  Rating:    %.1f (%d reviews)\n", item.Rating, item.ReviewCount)
	fmt.Fprintf(s.out, "  Shipping:  %s\n", shipping)
	if qty := s.cart.Quantity(item.ID); qty > 0 {
		fmt.Fprintf(s.out, "  In cart:   %d\n", qty)
	}
	return nil
}

// lowStock handles "lowstock"
func (s *Shell) lowStock([]string) error {
	items := s.catalog.LowStock()
	if len(items) == 0 {
		fmt.Fprintln(s.out, "All items are well stocked.")
		return nil
	}
	s.render(items)
	return nil
}

// render prints items as a numbered table and makes them the current view
func (s *Shell) render(items []catalog.Item) {
	s.view = items
	if len(items) == 0 {
		return
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tBRAND\tCATEGORY\tPRICE\tSTOCK\tRATING\tSHIPPING")
	for i, item := range items {
		shipping := ""
		if item.FreeShipping {
			shipping = "free"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%.1f\t%s\n",
			i+1, item.Name, item.Brand, item.Category, s.money.Format(item.Price), item.Stock, item.Rating, shipping)
	}
	w.Flush()
}

// resolve finds the item named by a 1-based position in the current view
// or by full ID
func (s *Shell) resolve(ref string) (catalog.Item, error) {
	if ref == "" {
		return catalog.Item{}, errors.New("missing item reference")
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(s.view) {
			return catalog.Item{}, errors.Wrapf(ErrItemNotFound, "no item #%d in the current listing", n)
		}
		ref = s.view[n-1].ID.String()
	}

	id, err := catalog.ParseItemID(ref)
	if err != nil {
		return catalog.Item{}, errors.Wrapf(ErrItemNotFound, "%q is not a listing number or item ID", ref)
	}

	item, ok := s.catalog.FindByID(id)
	if !ok {
		return catalog.Item{}, errors.Wrapf(ErrItemNotFound, "%s", id)
	}
	return item, nil
}
