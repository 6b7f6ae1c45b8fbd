package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/grasp/internal/selection"
	"go.klb.dev/grasp/internal/selector"
)

func newGetCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the current selection, whatever its kind",
		Long: `Retrieves the current selection and writes it to stdout.

Text and file paths are printed with a trailing newline; image data is
written raw, so redirect it:

  grasp get > selection.png

Use --method to force a single acquisition method instead of the default
accessibility-then-clipboard fallback order.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(_ *cobra.Command, _ []string) error { return runGet(v) },
	}

	addCommonFlags(cmd)
	cmd.Flags().String("method", "auto", "acquisition method: auto|accessibility|clipboard")

	return cmd
}

func runGet(v *viper.Viper) error {
	sel, err := acquire(v)
	if err != nil {
		return err
	}
	return writeSelection(sel)
}

// acquire resolves the selection using the configured method.
func acquire(v *viper.Viper) (selection.Selection, error) {
	s := selector.NewWith(setupFromViper(v))
	switch method := v.GetString("method"); method {
	case "", "auto":
		return s.GetSelection()
	case "accessibility":
		return s.GetSelectionByAccessibility()
	case "clipboard":
		return s.GetSelectionByClipboard()
	default:
		return selection.Selection{}, fmt.Errorf("unknown method %q (want auto, accessibility or clipboard)", method)
	}
}

func writeSelection(sel selection.Selection) error {
	switch sel.Kind() {
	case selection.KindText:
		if text, ok := sel.AsText(); ok {
			fmt.Println(text)
			return nil
		}
		return selection.NewError(selection.CodeEncoding, "selection text is not valid UTF-8")
	case selection.KindFile:
		if path, ok := sel.AsFilePath(); ok {
			fmt.Println(path)
			return nil
		}
		return selection.NewError(selection.CodeEncoding, "selection file path is not valid UTF-8")
	default:
		_, err := os.Stdout.Write(sel.Data())
		return err
	}
}

func newTextCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "text",
		Short: "Print the current selection, text only",
		Long: `Retrieves the current selection and prints it as text. Fails when the
resolved selection is an image or any other non-text kind.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(_ *cobra.Command, _ []string) error {
			s := selector.NewWith(setupFromViper(v))
			text, err := selector.Text(s)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		},
	}

	addCommonFlags(cmd)

	return cmd
}
