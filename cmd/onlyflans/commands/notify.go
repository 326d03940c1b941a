package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"onlyflans/internal/domain/notify"
	subscribersdomain "onlyflans/internal/domain/subscribers"
)

var (
	ensureTestSubscriber bool
	alertFlanID          uint
)

const testSubscriberEmail = "test@example.com"

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send subscriber notifications",
}

var notifyDigestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Send the weekly digest now",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp(application)

		if ensureTestSubscriber {
			_, err := application.Services().Subscribers.Subscribe(cmd.Context(), testSubscriberEmail, "Test User")
			if err != nil && !errors.Is(err, subscribersdomain.ErrDuplicateSubscriber) {
				return fmt.Errorf("create test subscriber: %w", err)
			}
		}

		result, err := application.SendWeeklyDigest(cmd.Context())
		if err != nil {
			return err
		}
		printBatch(cmd, notify.KindWeeklyDigest, result)
		return nil
	},
}

var notifyAlertCmd = &cobra.Command{
	Use:   "alert",
	Short: "Announce a flan to alert subscribers",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp(application)

		result, err := application.SendNewFlanAlert(cmd.Context(), alertFlanID)
		if err != nil {
			return err
		}
		printBatch(cmd, notify.KindNewFlanAlert, result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyDigestCmd, notifyAlertCmd)

	notifyDigestCmd.Flags().BoolVar(&ensureTestSubscriber, "test-subscriber", false, "Subscribe "+testSubscriberEmail+" before sending")
	notifyAlertCmd.Flags().UintVar(&alertFlanID, "flan-id", 0, "Flan to announce (required)")
	_ = notifyAlertCmd.MarkFlagRequired("flan-id")
}

func printBatch(cmd *cobra.Command, kind string, result notify.BatchResult) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d attempted, %d sent, %d failed\n", kind, result.Attempted, result.Sent, result.Failed)
}
