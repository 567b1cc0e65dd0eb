package transfer

import (
	"context"
	"fmt"
	"log"

	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/auth"
	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/backup"
	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/config"
	"github.com/NIXKnight/YouTubeSubscriptionTransfer/internal/youtube"
)

const previewLimit = 10

// Menu drives the interactive two-option workflow: extract from the source
// account, import into the destination account.
type Menu struct {
	cfg           *config.Config
	authenticator *auth.Authenticator
	prompter      *config.Prompter
	store         *backup.Store
	newAPI        func(ctx context.Context, cred *auth.Credential) API
}

func NewMenu(cfg *config.Config, authenticator *auth.Authenticator, prompter *config.Prompter) *Menu {
	return &Menu{
		cfg:           cfg,
		authenticator: authenticator,
		prompter:      prompter,
		store:         backup.NewStore(cfg.Files.BackupFile),
		newAPI: func(ctx context.Context, cred *auth.Credential) API {
			return youtube.NewClient(
				cred.HTTPClient(ctx),
				cfg.YouTube.APIBaseURL,
				cfg.YouTube.PageSize,
				cfg.Transfer.MaxRetries,
				cfg.YouTube.HTTPTimeout,
			)
		},
	}
}

// Run loops over the menu until the operator exits. A fatal phase error ends
// the loop and propagates to the caller for a non-zero exit.
func (m *Menu) Run(ctx context.Context) error {
	fmt.Println("=== YouTube Subscription Transfer ===")

	for {
		fmt.Println("\nChoose an option:")
		fmt.Println("1. Extract subscriptions from the source account")
		fmt.Println("2. Import subscriptions into the destination account")
		fmt.Println("3. View saved subscription data")
		fmt.Println("4. Exit")

		choice, err := m.prompter.PromptChoice(1, 4)
		if err != nil {
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		switch choice {
		case 1:
			if err := m.RunExtract(ctx); err != nil {
				return err
			}
		case 2:
			if err := m.RunImport(ctx); err != nil {
				return err
			}
		case 3:
			m.viewBackup()
		case 4:
			fmt.Println("Goodbye!")
			return nil
		}
	}
}

// RunExtract authenticates the source account and writes a fresh backup.
func (m *Menu) RunExtract(ctx context.Context) error {
	fmt.Println("\n--- Extracting Subscriptions ---")
	fmt.Println("You'll be asked to authenticate with your SOURCE account.")

	cred, err := m.authenticator.Authenticate(ctx, auth.RoleSource)
	if err != nil {
		return err
	}

	extractor := NewExtractor(m.newAPI(ctx, cred), m.store)
	b, err := extractor.Extract(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nExtracted and saved %d subscriptions to %s\n", b.Count(), m.store.Path())
	return nil
}

// RunImport loads the backup, authenticates the destination account, asks for
// confirmation, and runs the import. Declining the confirmation makes no
// remote calls.
func (m *Menu) RunImport(ctx context.Context) error {
	fmt.Println("\n--- Importing Subscriptions ---")

	b, err := m.store.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Found %d subscriptions to import.\n", b.Count())
	if b.SourceAccountLabel != "" {
		fmt.Printf("Backup was exported from %q on %s.\n", b.SourceAccountLabel, b.ExportedAt.Format("2006-01-02"))
	}
	fmt.Println("You'll be asked to authenticate with your DESTINATION account.")

	cred, err := m.authenticator.Authenticate(ctx, auth.RoleDestination)
	if err != nil {
		return err
	}

	if !m.cfg.Transfer.AssumeYes {
		prompt := fmt.Sprintf("Proceed to subscribe to %d channels?", b.Count())
		if !m.prompter.PromptBool(prompt, false) {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	api := m.newAPI(ctx, cred)
	if channel, chErr := api.MyChannel(ctx); chErr == nil {
		fmt.Printf("Authenticated as: %s\n", channel.Title)
	}

	importer := NewImporter(api, m.cfg.Transfer.RequestDelay)
	outcomes, importErr := importer.Import(ctx, b)

	Summarize(outcomes).Print()

	if importErr != nil {
		log.Printf("Import stopped: %v", importErr)
		return importErr
	}

	log.Printf("Import completed: %d records processed", len(outcomes))
	return nil
}

func (m *Menu) viewBackup() {
	fmt.Println("\n--- Subscription Data ---")

	b, err := m.store.Load()
	if err != nil {
		fmt.Println("No usable subscription data found. Extract subscriptions first.")
		return
	}

	fmt.Printf("Total subscriptions: %d\n", b.Count())
	if b.SourceAccountLabel != "" {
		fmt.Printf("Exported from %q on %s\n", b.SourceAccountLabel, b.ExportedAt.Format("2006-01-02 15:04"))
	}

	limit := min(previewLimit, b.Count())
	if limit > 0 {
		fmt.Printf("\nFirst %d channels:\n", limit)
	}
	for i := 0; i < limit; i++ {
		fmt.Printf("%d. %s\n", i+1, b.Subscriptions[i].ChannelTitle)
	}
	if b.Count() > limit {
		fmt.Printf("... and %d more\n", b.Count()-limit)
	}
}
