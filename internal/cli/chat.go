package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifelens/lifelens-cli/internal/constants"
	"github.com/lifelens/lifelens-cli/internal/render"
)

type ChatCmd struct {
	Send    ChatSendCmd    `cmd:"" help:"Send a message to the AI assistant."`
	History ChatHistoryCmd `cmd:"" help:"Show the conversation." default:"1"`
	Clear   ChatClearCmd   `cmd:"" help:"Delete the conversation."`
}

type ChatSendCmd struct {
	Message []string `arg:"" help:"Message text."`
}

func (c *ChatSendCmd) Run(ctx *Context) error {
	message := strings.Join(c.Message, " ")
	if result := ctx.Validator.ValidateChatMessage(message); !result.Valid() {
		return fmt.Errorf("invalid message:\n%s", result.FormatReport())
	}

	replies, err := ctx.API.SendChat(context.Background(), message)
	if err != nil {
		return err
	}

	width := TermWidth()
	for _, m := range replies {
		if m.Sender == string(constants.SenderAI) {
			fmt.Print(render.Markdown(m.Message, width))
		}
	}
	return nil
}

type ChatHistoryCmd struct {
	Raw bool `help:"Print raw text without markdown rendering."`
}

func (c *ChatHistoryCmd) Run(ctx *Context) error {
	messages, err := ctx.API.ChatHistory(context.Background())
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		fmt.Println("No conversation yet. Run 'lifelens chat send <message>'.")
		return nil
	}

	width := TermWidth()
	for _, m := range messages {
		if m.Sender == string(constants.SenderAI) {
			fmt.Print("assistant: ")
			if c.Raw {
				fmt.Println(m.Message)
			} else {
				fmt.Print(render.Markdown(m.Message, width))
			}
			continue
		}
		fmt.Printf("you: %s\n", m.Message)
	}
	return nil
}

type ChatClearCmd struct {
	Yes bool `help:"Skip confirmation."`
}

func (c *ChatClearCmd) Run(ctx *Context) error {
	if !c.Yes && !confirm("Delete the whole conversation?") {
		fmt.Println("Aborted.")
		return nil
	}
	if err := ctx.API.ClearChat(context.Background()); err != nil {
		return err
	}
	fmt.Println("Conversation deleted.")
	return nil
}
