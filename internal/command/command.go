package command

import (
	commandHandler "lensboard/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewTokenHandler)

type Command struct {
	tokenCommandHandler *commandHandler.TokenHandler
}

// NewCommand .
func NewCommand(
	tokenCommandHandler *commandHandler.TokenHandler,
) *Command {
	return &Command{
		tokenCommandHandler: tokenCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "簽發開發測試用的 JWT",
		Run: func(cmd *cobra.Command, args []string) {
			command, cleanup, err := newCmd()
			if err != nil {
				panic(err)
			}
			defer cleanup()

			command.tokenCommandHandler.Mint(cmd, args)
		},
	}
	tokenCmd.Flags().Int64("user-id", 1, "token 的使用者 ID")
	tokenCmd.Flags().String("email", "dev@example.com", "token 的使用者 email")
	tokenCmd.Flags().Duration("ttl", 0, "有效期限，0 表示不過期")

	rootCmd.AddCommand(tokenCmd)
}
