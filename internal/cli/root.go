package cli

import (
	"context"
	"fmt"
)

// Root fires the load event, shows the loaded entry and runs the REPL. A
// failed start is logged; the REPL still runs so the user can create
// entries.
func (a *App) Root(ctx context.Context) error {
	t := a.terminal
	fmt.Fprintln(t.out, styleHeader.Render("Welcome to Web Diary (type 'help' for commands)"))
	if a.config.ReadOnly {
		fmt.Fprintln(t.out, styleMeta.Render("read-only mode: changes cannot be saved"))
	}

	if err := t.Load(ctx); err != nil {
		a.log.Error(ctx, "start failed", "error", err)
	}
	renderList(t.out, t.items, t.closeVisible, t.width)

	runREPL(ctx, t, a.markdown, a.log)
	return ctx.Err()
}
