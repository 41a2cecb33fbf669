package diary

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/webdiary/internal/dom"
)

// searchFlags makes keywords case-insensitive.
const searchFlags = "i"

// Search prompts for a keyword and hides the entries that do not match it.
// A cancelled or empty prompt does nothing. A keyword that does not compile
// is reported through the error handler and leaves the list unchanged.
func (c *Controller) Search(ctx context.Context) error {
	keyword, ok := c.env.Surface.Prompt(MsgSearchPrompt)
	if !ok || keyword == "" {
		return nil
	}

	if err := dom.Filter(c.items, keyword, searchFlags); err != nil {
		c.env.Errors.Search(ctx, err)
		return fmt.Errorf("search %q: %w", keyword, err)
	}

	c.env.Surface.SetList(c.Items())
	c.env.Surface.SetCloseVisible(true)
	return nil
}

// CloseSearch shows every entry again with the loaded one selected.
func (c *Controller) CloseSearch(ctx context.Context) error {
	dom.Highlight(c.items, c.current)
	c.env.Surface.SetList(c.Items())
	c.env.Surface.SetCloseVisible(false)
	return nil
}
