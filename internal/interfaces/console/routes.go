// internal/interfaces/console/routes.go
package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
)

type handlerFunc func(args []string) error

type route struct {
	handler handlerFunc
	usage   string
	summary string
}

// setupRoutes registers every shell command
func (s *Shell) setupRoutes() {
	// Catalog
	s.handle("list", "list [sort]", "show all items (sort: relevance, price-asc, price-desc, rating, newest)", s.listItems)
	s.handle("search", "search [text] [category=X] [max=N] [free] [sort=K]", "filter the catalog", s.searchItems)
	s.handle("show", "show <#|id>", "show one item in detail", s.showItem)
	s.handle("lowstock", "lowstock", "list items running low", s.lowStock)

	// Cart
	s.handle("add", "add <#|id> [qty]", "add an item to the cart (default qty 1)", s.addToCart)
	s.handle("set", "set <#|id> <qty>", "set an item's cart quantity (0 removes)", s.updateCartItem)
	s.handle("remove", "remove <#|id>", "remove an item from the cart", s.removeFromCart)
	s.handle("cart", "cart", "show the cart", s.showCart)
	s.handle("clear", "clear", "empty the cart", s.clearCart)

	// Checkout
	s.handle("checkout", "checkout", "buy everything in the cart", s.checkoutCart)

	s.handle("help", "help", "show this help", s.help)
	s.handle("quit", "quit", "leave the shop", func([]string) error { return errQuit })
	s.alias("exit", "quit")
}

func (s *Shell) handle(name, usage, summary string, h handlerFunc) {
	s.routes[name] = route{handler: s.logged(name, h), usage: usage, summary: summary}
	s.order = append(s.order, name)
}

func (s *Shell) alias(name, target string) {
	s.routes[name] = s.routes[target]
}

// logged wraps a handler with per-command logging
func (s *Shell) logged(name string, h handlerFunc) handlerFunc {
	return func(args []string) error {
		start := time.Now()
		err := h(args)

		entry := s.logger.WithFields(logrus.Fields{
			"command": name,
			"args":    strings.Join(args, " "),
			"latency": time.Since(start),
		})
		switch {
		case errors.Is(err, errQuit):
			entry.Debug("Shell quit requested")
		case err != nil:
			entry.WithError(err).Warn("Command failed")
		default:
			entry.Debug("Command completed")
		}
		return err
	}
}

func (s *Shell) help([]string) error {
	for _, name := range s.order {
		r := s.routes[name]
		fmt.Fprintf(s.out, "  %-52s %s\n", r.usage, r.summary)
	}
	return nil
}
