// Package update provides the update command.
package update

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/bwsm-dev/bwsm/internal/apperr"
	cliinternal "github.com/bwsm-dev/bwsm/internal/cli/commands/internal"
	"github.com/bwsm-dev/bwsm/internal/cli/confirm"
	"github.com/bwsm-dev/bwsm/internal/cli/output"
	"github.com/bwsm-dev/bwsm/internal/cli/valueinput"
	"github.com/bwsm-dev/bwsm/internal/config"
	"github.com/bwsm-dev/bwsm/internal/secmem"
	"github.com/bwsm-dev/bwsm/internal/usecase/secret"
)

// Runner executes the update command.
type Runner struct {
	UseCase  *secret.UpdateUseCase
	Resolver *secret.NameResolver
	Prompter *confirm.Prompter
	Stdout   io.Writer
	Stderr   io.Writer
}

// Options holds the options for the update command.
type Options struct {
	Config config.Update
	// Value overrides Config.Value when non-empty; it is set when the value
	// was read from stdin or an interactive prompt.
	Value    *secmem.Value
	Force    bool
	ShowDiff bool
	JSON     bool
}

// JSONOutput represents the JSON output structure for the update command.
type JSONOutput struct {
	SecretID  string `json:"secret_id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	OrgID     string `json:"org_id"`
	Note      string `json:"note,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

// Command returns the update command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update an existing secret",
		Description: `Apply a sparse update to a secret. Fields not given keep their stored
values. The target is a UUID (--secret-id) or a unique name (--secret-name).

Passing --value with an empty string reads the new value from piped stdin
or from a hidden prompt on an interactive terminal.

A secret that was detached from its project can only be updated when
--project-ids assigns it to one; this is confirmed interactively unless
--force is given.

EXAMPLES:
  bwsm update --secret-id <uuid> --value new-password
  bwsm update --secret-name db-password --org-id <uuid> --note "rotated"
  openssl rand -base64 32 | bwsm update --secret-id <uuid> --value ""
  bwsm update --secret-id <uuid> --value new-password --show-diff`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "access-token",
				Usage: "Machine account access token",
			},
			&cli.StringFlag{
				Name:  "secret-id",
				Usage: "Secret UUID",
			},
			&cli.StringFlag{
				Name:  "secret-name",
				Usage: "Secret name (must be unique in the organization)",
			},
			&cli.StringFlag{
				Name:  "key",
				Usage: "New key (name)",
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "New value (empty string reads stdin or prompts)",
			},
			&cli.StringFlag{
				Name:  "note",
				Usage: "New note",
			},
			&cli.StringFlag{
				Name:  "org-id",
				Usage: "Organization UUID",
			},
			&cli.StringFlag{
				Name:  "project-ids",
				Usage: "Comma-separated project UUIDs to assign the secret to",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Skip confirmation prompts",
			},
			&cli.BoolFlag{
				Name:  "show-diff",
				Usage: "Print a unified diff of the value change to stderr before writing",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as a single JSON line",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Write diagnostics to stderr",
			},
		},
		Action: action,
	}
}

func action(ctx context.Context, cmd *cli.Command) error {
	if cmd.String("secret-id") != "" && cmd.String("secret-name") != "" {
		return apperr.Usage("--secret-id and --secret-name cannot be used together")
	}
	if cmd.String("secret-id") == "" && cmd.String("secret-name") == "" {
		return apperr.Usage("a target is required; provide --secret-id <uuid> or --secret-name <name>")
	}
	if !cmd.IsSet("key") && !cmd.IsSet("value") && !cmd.IsSet("note") && !cmd.IsSet("project-ids") {
		return apperr.Usage("nothing to update; provide at least one of --key, --value, --note, --project-ids")
	}

	resolver := &config.Resolver{}
	cfg := resolver.ResolveUpdate(config.UpdateFlags{
		AccessToken: cmd.String("access-token"),
		SecretID:    cmd.String("secret-id"),
		SecretName:  cmd.String("secret-name"),
		OrgID:       cmd.String("org-id"),
		Key:         cmd.String("key"),
		Value:       cmd.String("value"),
		Note:        cmd.String("note"),
		ProjectIDs:  cmd.String("project-ids"),
	})
	if cfg.AccessToken == "" {
		return apperr.Usage("an access token is required; provide --access-token or set BWS_ACCESS_TOKEN")
	}

	// --value "" is the explicit request to read the value from stdin or
	// an interactive prompt.
	var value *secmem.Value
	if cmd.IsSet("value") && cfg.Value == "" {
		reader := &valueinput.Reader{Stdin: os.Stdin, Stderr: cmd.Root().ErrWriter}
		v, err := reader.Read("")
		if err != nil {
			if !apperr.Is(err, apperr.CategoryValueRequired) {
				return err
			}
			// No piped input either: keep the stored value.
		} else {
			value = v
		}
	}

	client, err := cliinternal.Connect(cmd, cfg.AccessToken)
	if err != nil {
		return err
	}
	defer client.Close()

	debug := cliinternal.DebugWriter(cmd)
	r := &Runner{
		UseCase:  &secret.UpdateUseCase{Client: client.Secrets(), Debug: debug},
		Resolver: &secret.NameResolver{Client: client.Secrets(), Debug: debug},
		Prompter: &confirm.Prompter{Stdin: os.Stdin, Stderr: cmd.Root().ErrWriter},
		Stdout:   cmd.Root().Writer,
		Stderr:   cmd.Root().ErrWriter,
	}

	return r.Run(ctx, Options{
		Config:   cfg,
		Value:    value,
		Force:    cmd.Bool("force"),
		ShowDiff: cmd.Bool("show-diff"),
		JSON:     cmd.Bool("json"),
	})
}

// Run executes the update command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	secretID := opts.Config.SecretID
	if opts.Config.SecretName != "" {
		id, err := r.Resolver.Resolve(ctx, opts.Config.SecretName, opts.Config.OrgID)
		if err != nil {
			if apperr.Is(err, apperr.CategoryMultipleSecrets) {
				return apperr.Wrap(apperr.CategoryMultipleSecretsUpdate,
					fmt.Errorf("cannot update by name when multiple secrets share it: %w\n\nUse --secret-id <uuid> to specify which secret to update", err))
			}

			return err
		}
		secretID = id
	}

	current, err := r.UseCase.Current(ctx, secretID)
	if err != nil {
		return err
	}

	// The organization usually comes from the secret itself; a flag or env
	// value takes priority when present.
	orgID := opts.Config.OrgID
	if orgID == "" {
		orgID = current.OrganizationID
	}

	if current.ProjectID == "" && len(opts.Config.ProjectIDs) > 0 {
		output.Warn(r.Stderr, "This secret was removed from its project (has no project_id).")
		ok, err := r.Prompter.Confirm(
			fmt.Sprintf("Secret %s has no project; assign it and update?", secretID), opts.Force)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Usage("update cancelled")
		}
	}

	value := opts.Config.Value
	if !opts.Value.Empty() {
		value, err = opts.Value.Open()
		if err != nil {
			return err
		}
	}

	if opts.ShowDiff && value != "" && value != current.Value {
		output.Print(r.Stderr, output.Diff("current", "new", current.Value+"\n", value+"\n"))
	}

	result, err := r.UseCase.Execute(ctx, secret.UpdateInput{
		SecretID:   secretID,
		OrgID:      orgID,
		Key:        opts.Config.Key,
		Value:      value,
		Note:       opts.Config.Note,
		ProjectIDs: opts.Config.ProjectIDs,
		Stored:     current,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		return output.JSONLine(r.Stdout, JSONOutput{
			SecretID:  result.SecretID,
			Key:       result.Key,
			Value:     result.Value,
			OrgID:     orgID,
			Note:      result.Note,
			ProjectID: result.ProjectID,
		})
	}

	// Stdout carries only the secret ID for shell pipelines.
	output.Success(r.Stderr, "Updated secret %s", result.SecretID)
	output.Println(r.Stdout, result.SecretID)

	return nil
}
