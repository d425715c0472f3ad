package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	console "github.com/openpulse/console-go"
)

var cmsURL string
var crmURL string
var debug bool

const cmdTimeout = 15 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "consolectl",
		Short: "Admin console client for CMS and CRM backends",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("CONSOLE_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultCMS := getEnv("CONSOLE_CMS_BASE_URL", "http://localhost:8080")
	defaultCRM := getEnv("CONSOLE_CRM_BASE_URL", "http://localhost:8081")
	rootCmd.PersistentFlags().StringVar(&cmsURL, "cms-url", defaultCMS, "Base URL of the CMS service")
	rootCmd.PersistentFlags().StringVar(&crmURL, "crm-url", defaultCRM, "Base URL of the CRM service")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newMeCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newCustomersCmd())
	rootCmd.AddCommand(newDealsCmd())
	rootCmd.AddCommand(newActivitiesCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newSourcesCmd())
	rootCmd.AddCommand(newContentCmd())
	rootCmd.AddCommand(newUsersCmd())
	rootCmd.AddCommand(newReportsCmd())

	return rootCmd
}

// newConsole builds a Console against the configured service URLs. The CLI
// persists session state on disk so login survives across invocations.
func newConsole() (*console.Console, error) {
	return console.New(
		console.WithCMSBaseURL(cmsURL),
		console.WithCRMBaseURL(crmURL),
		console.WithDebugLogging(debug),
	)
}

func withConsole(cmd *cobra.Command, fn func(ctx context.Context, c *console.Console) error) error {
	c, err := newConsole()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
	defer cancel()
	return fn(ctx, c)
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				start := time.Now()
				if err := c.Login(ctx, email, password); err != nil {
					log.Error().Err(err).Str("email", email).Dur("elapsed", time.Since(start)).Msg("login failed")
					return err
				}
				sess := c.Session()
				log.Debug().Str("email", email).Dur("elapsed", time.Since(start)).Msg("login completed")
				fmt.Printf("Logged in as %s (%s)\n", sess.User.Email, sess.User.Role)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated principal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				if st := c.CheckAuth(ctx); st != console.AuthAuthenticated {
					return fmt.Errorf("not authenticated (status %s), run login first", st)
				}
				return printJSON(c.Session().User)
			})
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				c.Logout()
				fmt.Println("Logged out")
				return nil
			})
		},
	}
}

func newCustomersCmd() *cobra.Command {
	root := &cobra.Command{Use: "customers", Short: "Manage CRM customers"}

	var search, status string
	var page, limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				resp, err := c.Customers().List(ctx, console.ListCustomersParams{
					Search: search,
					Status: console.CustomerStatus(status),
					Page:   page,
					Limit:  limit,
				})
				if err != nil {
					return err
				}
				return printJSON(resp)
			})
		},
	}
	list.Flags().StringVar(&search, "search", "", "Search term")
	list.Flags().StringVar(&status, "status", "", "Filter by status")
	list.Flags().IntVar(&page, "page", 0, "Page number")
	list.Flags().IntVar(&limit, "limit", 0, "Page size")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a customer by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				cust, err := c.Customers().Get(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cust)
			})
		},
	}

	var name, email, company string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				cust, err := c.Customers().Create(ctx, console.CreateCustomerRequest{
					Name:    name,
					Email:   email,
					Company: company,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Customer created: %s - %s\n", cust.ID, cust.Name)
				return nil
			})
		},
	}
	create.Flags().StringVar(&name, "name", "", "Customer name (required)")
	create.Flags().StringVar(&email, "email", "", "Customer email (required)")
	create.Flags().StringVar(&company, "company", "", "Company (optional)")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("email")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				if err := c.Customers().Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Println("Customer deleted")
				return nil
			})
		},
	}

	root.AddCommand(list, get, create, del)
	return root
}

func newDealsCmd() *cobra.Command {
	root := &cobra.Command{Use: "deals", Short: "Manage CRM deals"}

	var stage, customerID string
	var page, limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				resp, err := c.Deals().List(ctx, console.ListDealsParams{
					Stage:      console.DealStage(stage),
					CustomerID: customerID,
					Page:       page,
					Limit:      limit,
				})
				if err != nil {
					return err
				}
				return printJSON(resp)
			})
		},
	}
	list.Flags().StringVar(&stage, "stage", "", "Filter by stage")
	list.Flags().StringVar(&customerID, "customer-id", "", "Filter by customer")
	list.Flags().IntVar(&page, "page", 0, "Page number")
	list.Flags().IntVar(&limit, "limit", 0, "Page size")

	var newStage string
	stageCmd := &cobra.Command{
		Use:   "stage <id>",
		Short: "Move a deal to a new pipeline stage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				deal, err := c.Deals().UpdateStage(ctx, args[0], console.DealStage(newStage))
				if err != nil {
					return err
				}
				fmt.Printf("Deal %s moved to %s\n", deal.ID, deal.Stage)
				return nil
			})
		},
	}
	stageCmd.Flags().StringVar(&newStage, "to", "", "Target stage (required)")
	_ = stageCmd.MarkFlagRequired("to")

	root.AddCommand(list, stageCmd)
	return root
}

func newActivitiesCmd() *cobra.Command {
	root := &cobra.Command{Use: "activities", Short: "Manage CRM activities"}

	var page, limit int
	mine := &cobra.Command{
		Use:   "mine",
		Short: "List activities assigned to the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				resp, err := c.Activities().Mine(ctx, console.ListActivitiesParams{Page: page, Limit: limit})
				if err != nil {
					return err
				}
				return printJSON(resp)
			})
		},
	}
	mine.Flags().IntVar(&page, "page", 0, "Page number")
	mine.Flags().IntVar(&limit, "limit", 0, "Page size")

	complete := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark an activity as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				act, err := c.Activities().Complete(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Activity completed: %s - %s\n", act.ID, act.Subject)
				return nil
			})
		},
	}

	root.AddCommand(mine, complete)
	return root
}

func newTagsCmd() *cobra.Command {
	root := &cobra.Command{Use: "tags", Short: "Manage CRM tags"}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				tags, err := c.Tags().List(ctx)
				if err != nil {
					return err
				}
				return printJSON(tags)
			})
		},
	}

	root.AddCommand(list)
	return root
}

func newSourcesCmd() *cobra.Command {
	root := &cobra.Command{Use: "sources", Short: "Manage content ingestion sources"}

	var page, limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				resp, err := c.Sources().List(ctx, console.ListSourcesParams{Page: page, Limit: limit})
				if err != nil {
					return err
				}
				return printJSON(resp)
			})
		},
	}
	list.Flags().IntVar(&page, "page", 0, "Page number")
	list.Flags().IntVar(&limit, "limit", 0, "Page size")

	run := &cobra.Command{
		Use:   "run <id>",
		Short: "Trigger an ingestion run for a source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				resp, err := c.Sources().Run(ctx, args[0])
				if err != nil {
					return err
				}
				if resp.JobID != "" {
					fmt.Printf("%s (job %s)\n", resp.Message, resp.JobID)
				} else {
					fmt.Println(resp.Message)
				}
				return nil
			})
		},
	}

	root.AddCommand(list, run)
	return root
}

func newContentCmd() *cobra.Command {
	root := &cobra.Command{Use: "content", Short: "Manage ingested content"}

	var status, contentType string
	var page, limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List content items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				resp, err := c.Content().List(ctx, console.ListContentParams{
					Status: console.ContentStatus(status),
					Type:   console.ContentType(contentType),
					Page:   page,
					Limit:  limit,
				})
				if err != nil {
					return err
				}
				return printJSON(resp)
			})
		},
	}
	list.Flags().StringVar(&status, "status", "", "Filter by status")
	list.Flags().StringVar(&contentType, "type", "", "Filter by content type")
	list.Flags().IntVar(&page, "page", 0, "Page number")
	list.Flags().IntVar(&limit, "limit", 0, "Page size")

	var newStatus string
	statusCmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Move a content item through the review workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				item, err := c.Content().UpdateStatus(ctx, args[0], console.ContentStatus(newStatus))
				if err != nil {
					return err
				}
				fmt.Printf("Content %s is now %s\n", item.ID, item.Status)
				return nil
			})
		},
	}
	statusCmd.Flags().StringVar(&newStatus, "to", "", "Target status (required)")
	_ = statusCmd.MarkFlagRequired("to")

	root.AddCommand(list, statusCmd)
	return root
}

func newUsersCmd() *cobra.Command {
	root := &cobra.Command{Use: "users", Short: "Manage console operator accounts"}

	var page, limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List admin users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				resp, err := c.AdminUsers().List(ctx, console.ListAdminUsersParams{Page: page, Limit: limit})
				if err != nil {
					return err
				}
				return printJSON(resp)
			})
		},
	}
	list.Flags().IntVar(&page, "page", 0, "Page number")
	list.Flags().IntVar(&limit, "limit", 0, "Page size")

	var password string
	reset := &cobra.Command{
		Use:   "reset-password <id>",
		Short: "Set a new password for an admin user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				if err := c.AdminUsers().ResetPassword(ctx, args[0], password); err != nil {
					return err
				}
				fmt.Println("Password updated")
				return nil
			})
		},
	}
	reset.Flags().StringVar(&password, "password", "", "New password (required)")
	_ = reset.MarkFlagRequired("password")

	root.AddCommand(list, reset)
	return root
}

func newReportsCmd() *cobra.Command {
	root := &cobra.Command{Use: "reports", Short: "Reporting and dashboards"}

	overview := &cobra.Command{
		Use:   "overview",
		Short: "Show the dashboard overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, func(ctx context.Context, c *console.Console) error {
				resp, err := c.Reports().Overview(ctx)
				if err != nil {
					return err
				}
				return printJSON(resp)
			})
		},
	}

	root.AddCommand(overview)
	return root
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
