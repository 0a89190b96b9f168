package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fjod/go_cart/storefront/internal/chat"
	"github.com/fjod/go_cart/storefront/internal/domain"
	"github.com/fjod/go_cart/storefront/internal/handoff"
	"github.com/fjod/go_cart/storefront/internal/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the shop assistant in the terminal",
	Long: `Starts a local chat session with the same assistant the website uses.

Type a message, or press a quick reply with /<action> (for example /birthday
or /cart). /quit leaves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		links := handoff.Links{
			WhatsAppPhone: cfg.WhatsAppPhone,
			InstagramURL:  cfg.InstagramURL,
			EmailAddress:  cfg.StoreEmail,
		}
		store := session.NewMemoryStore(cfg.SessionTTL)
		defer store.Close()

		sessions := session.NewManager(store, chat.NewDispatcher(chat.DefaultResponses(), links), session.Options{
			ReplyDelay:    cfg.ChatReplyDelay,
			EffectDelay:   cfg.ChatEffectDelay,
			CancelOnClose: cfg.ChatCancelOnClose,
			Logger:        log,
		})
		defer sessions.Close()

		return runChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), sessions)
	},
}

// runChat reads lines from in until EOF or /quit and prints every new
// transcript line to out.
func runChat(ctx context.Context, in io.Reader, out io.Writer, sessions *session.Manager) error {
	st, err := sessions.Create(ctx)
	if err != nil {
		return err
	}
	defer sessions.Destroy(context.Background(), st.ID)

	seen := 0
	flush := func() error {
		cur, err := sessions.View(ctx, st.ID)
		if err != nil {
			return err
		}
		msgs := cur.Conversation.Messages()
		for _, m := range msgs[seen:] {
			printMessage(out, m)
		}
		seen = len(msgs)
		return nil
	}
	if err := flush(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" {
			return nil
		}

		var outcome session.Outcome
		if tag, ok := strings.CutPrefix(line, "/"); ok {
			action, known := domain.ParseAction(tag)
			if !known {
				fmt.Fprintf(out, "unknown action %q\n", tag)
			}
			outcome, err = sessions.PressAction(ctx, st.ID, action)
		} else {
			outcome, err = sessions.SendText(ctx, st.ID, line)
		}
		if err != nil {
			return err
		}
		if outcome.ReplyIn > 0 {
			want := seen + 1
			if outcome.Message != nil {
				want++
			}
			waitForReply(ctx, sessions, st.ID, want, outcome.ReplyIn+time.Second)
		}
		if err := flush(); err != nil {
			return err
		}
		printEffect(out, outcome.Effect)
	}
}

// waitForReply polls until the transcript holds want lines. Replies can be
// cancelled, so it gives up after limit.
func waitForReply(ctx context.Context, sessions *session.Manager, id string, want int, limit time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, limit)
	defer cancel()

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		cur, err := sessions.View(ctx, id)
		if err != nil || cur.Conversation.Len() >= want {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func printMessage(out io.Writer, m domain.ChatMessage) {
	if !m.IsBot {
		return
	}
	fmt.Fprintf(out, "bot: %s\n", m.Text)
	for _, qr := range m.QuickReplies {
		fmt.Fprintf(out, "  [/%s] %s %s\n", qr.Action, qr.Icon, qr.Label)
	}
}

func printEffect(out io.Writer, e chat.Effect) {
	switch e.Kind {
	case chat.EffectOpenCart:
		fmt.Fprintln(out, "(cart opened)")
	case chat.EffectOpenLink:
		fmt.Fprintf(out, "(open %s)\n", e.URL)
	case chat.EffectNavigation:
		fmt.Fprintf(out, "(go to %s)\n", e.Path)
	case chat.EffectNone:
	}
}
