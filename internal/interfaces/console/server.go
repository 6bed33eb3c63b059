// internal/interfaces/console/server.go
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/your-org/petshop-catalog/internal/config"
	"github.com/your-org/petshop-catalog/internal/domain/cart"
	"github.com/your-org/petshop-catalog/internal/domain/catalog"
	"github.com/your-org/petshop-catalog/internal/domain/checkout"
	"github.com/your-org/petshop-catalog/internal/pkg/money"
)

var (
	// ErrUnknownCommand is reported for input that matches no route
	ErrUnknownCommand = errors.New("unknown command")
	// ErrItemNotFound is reported when a reference names no catalog item
	ErrItemNotFound = errors.New("item not found")

	errQuit = errors.New("quit")
)

const prompt = "> "

// Shell is the terminal storefront. It reads one command per line and
// renders results and change notifications to out.
type Shell struct {
	config   *config.Config
	catalog  *catalog.Catalog
	cart     *cart.Cart
	checkout *checkout.Workflow
	logger   logrus.FieldLogger
	validate *validator.Validate
	money    money.Formatter

	in     io.Reader
	out    io.Writer
	routes map[string]route
	order  []string

	// view is the most recent listing; positional references index into it
	view []catalog.Item
}

// NewShell wires a shell to the shop services and subscribes to their
// change notifications
func NewShell(cfg *config.Config, cat *catalog.Catalog, c *cart.Cart, wf *checkout.Workflow, logger logrus.FieldLogger, in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		config:   cfg,
		catalog:  cat,
		cart:     c,
		checkout: wf,
		logger:   logger,
		validate: validator.New(),
		money:    money.NewFormatter(cfg.Display.CurrencySymbol),
		in:       in,
		out:      out,
		routes:   make(map[string]route),
	}

	s.setupRoutes()

	cat.AddChangeListener(s.onCatalogChanged)
	c.AddChangeListener(s.onCartChanged)

	return s
}

// Run processes commands until quit, end of input, or ctx is cancelled
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "Welcome to %s! %d items in stock. Type 'help' for commands.\n", s.config.App.Name, s.catalog.Len())

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, prompt)

		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "read command")
			}
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		err := s.dispatch(strings.ToLower(fields[0]), fields[1:])
		if errors.Is(err, errQuit) {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func (s *Shell) dispatch(name string, args []string) error {
	r, ok := s.routes[name]
	if !ok {
		return errors.Wrapf(ErrUnknownCommand, "%q (try 'help')", name)
	}
	return r.handler(args)
}

// onCatalogChanged refreshes stock figures in the current listing
func (s *Shell) onCatalogChanged(items []catalog.Item) {
	byID := make(map[catalog.ItemID]catalog.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	for i, shown := range s.view {
		if fresh, ok := byID[shown.ID]; ok {
			s.view[i] = fresh
		}
	}
	s.logger.WithField("items", len(items)).Debug("Catalog changed, listing refreshed")
}

func (s *Shell) onCartChanged(totals cart.Totals) {
	fmt.Fprintf(s.out, "Cart: %d item(s), %s\n", totals.TotalQuantity, s.money.Format(totals.SubTotal))
}
