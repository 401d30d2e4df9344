package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meet-when/coffee-scheduler/internal/fingerprint"
	"github.com/meet-when/coffee-scheduler/internal/history"
	"github.com/meet-when/coffee-scheduler/internal/scheduling"
)

var (
	cfgFile           string
	contactsFile      string
	busyFilePath      string
	startDate         string
	endDate           string
	organizerTimezone string
	slotsPerContact   int
	consultantMode    bool
	skipWeekends      bool
	historyPath       string
	noHistory         bool
	jsonOutput        bool
	debug             bool
)

var rootCmd = &cobra.Command{
	Use:   "coffeeschedule",
	Short: "Batch-schedule coffee chat meetings across a contact list",
	Long: `coffeeschedule assigns coffee-chat slots to a batch of contacts against
one organizer's calendar, scoring candidates by time-of-day, day-of-week,
and meeting density, and accounting for each contact's own timezone.`,
	RunE: runSchedule,
}

// Execute runs the root command; exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./coffeeschedule.yaml)")

	rootCmd.Flags().StringVar(&contactsFile, "contacts", "", "JSON file of contacts: [{id,name,timezone}] (required)")
	rootCmd.Flags().StringVar(&busyFilePath, "busy", "", "JSON file of organizer busy intervals: [{start,end}]")
	rootCmd.Flags().StringVar(&startDate, "start", "", "range start, RFC3339 (required)")
	rootCmd.Flags().StringVar(&endDate, "end", "", "range end, RFC3339 (required)")
	rootCmd.Flags().StringVar(&organizerTimezone, "organizer-timezone", "", "organizer IANA timezone; empty means UTC")
	rootCmd.Flags().IntVar(&slotsPerContact, "slots-per-contact", 3, "number of slots to suggest per contact")
	rootCmd.Flags().BoolVar(&consultantMode, "consultant-mode", false, "favor Friday-afternoon slots")
	rootCmd.Flags().BoolVar(&skipWeekends, "skip-weekends", true, "exclude Saturday/Sunday from candidate generation")
	rootCmd.Flags().StringVar(&historyPath, "history", "coffeeschedule-history.db", "sqlite file to record batch runs in")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "don't persist this run to history")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "output the result as JSON")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.MarkFlagRequired("contacts")
	rootCmd.MarkFlagRequired("start")
	rootCmd.MarkFlagRequired("end")

	viper.BindPFlag("contacts", rootCmd.Flags().Lookup("contacts"))
	viper.BindPFlag("busy", rootCmd.Flags().Lookup("busy"))
	viper.BindPFlag("start", rootCmd.Flags().Lookup("start"))
	viper.BindPFlag("end", rootCmd.Flags().Lookup("end"))
	viper.BindPFlag("organizer_timezone", rootCmd.Flags().Lookup("organizer-timezone"))
	viper.BindPFlag("slots_per_contact", rootCmd.Flags().Lookup("slots-per-contact"))
	viper.BindPFlag("consultant_mode", rootCmd.Flags().Lookup("consultant-mode"))
	viper.BindPFlag("skip_weekends", rootCmd.Flags().Lookup("skip-weekends"))
	viper.BindPFlag("history", rootCmd.Flags().Lookup("history"))
	viper.BindPFlag("no_history", rootCmd.Flags().Lookup("no-history"))
	viper.BindPFlag("json", rootCmd.Flags().Lookup("json"))
	viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("coffeeschedule")
		viper.SetConfigType("yaml")
	}
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func runSchedule(cmd *cobra.Command, args []string) error {
	initLogger(viper.GetBool("debug"))

	contacts, err := loadContacts(viper.GetString("contacts"))
	if err != nil {
		return err
	}
	busy, err := loadBusy(viper.GetString("busy"))
	if err != nil {
		return err
	}

	start, err := time.Parse(time.RFC3339, viper.GetString("start"))
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, viper.GetString("end"))
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	cfg := scheduling.NewDefaultConfig()
	cfg.OrganizerTimezone = viper.GetString("organizer_timezone")
	cfg.ConsultantMode = viper.GetBool("consultant_mode")
	cfg.SkipWeekends = viper.GetBool("skip_weekends")
	cfg.DefaultSlotsPerContact = viper.GetInt("slots_per_contact")

	log.Info().
		Int("contacts", len(contacts)).
		Str("start", start.Format(time.RFC3339)).
		Str("end", end.Format(time.RFC3339)).
		Msg("running batch scheduling")

	fpContacts := make([]fingerprint.Contact, len(contacts))
	for i, c := range contacts {
		fpContacts[i] = fingerprint.Contact{ID: c.ID, Timezone: c.Timezone}
	}
	fp := fingerprint.Of(fingerprint.Input{
		Contacts:          fpContacts,
		RangeStart:        start,
		RangeEnd:          end,
		OrganizerTimezone: cfg.OrganizerTimezone,
		SlotsPerContact:   cfg.DefaultSlotsPerContact,
		ConsultantMode:    cfg.ConsultantMode,
	})

	ctx := context.Background()
	var store *history.Store
	if !viper.GetBool("no_history") {
		store, err = openHistoryStore(ctx, viper.GetString("history"))
		if err != nil {
			log.Warn().Err(err).Msg("history unavailable; continuing without it")
			store = nil
		}
	}
	if store != nil {
		if prior, herr := store.FindByFingerprint(ctx, fp); herr == nil && prior != nil {
			log.Info().Str("fingerprint", fp).Time("ran_at", prior.CreatedAt).
				Msg("identical batch already ran; re-computing anyway")
		}
	}

	result, err := scheduling.Optimize(scheduling.BatchRequest{
		Contacts: contacts,
		Range:    scheduling.DateRange{Start: start, End: end},
		Busy:     busy,
		Config:   cfg,
		Clock:    scheduling.RealClock{},
	})
	if err != nil {
		if se, ok := err.(*scheduling.Error); ok {
			return fmt.Errorf("%s: %s", se.Code, se.Message)
		}
		return err
	}

	if store != nil {
		var warningCodes []string
		for _, w := range result.Metadata.Warnings {
			warningCodes = append(warningCodes, string(w.Code))
		}
		run := history.Run{
			ID:                 uuid.New().String(),
			Fingerprint:        fp,
			OrganizerTimezone:  cfg.OrganizerTimezone,
			ContactCount:       len(contacts),
			TotalSlotsAnalyzed: result.Metadata.TotalSlotsAnalyzed,
			AverageQuality:     result.Metadata.AverageQuality,
			FairnessScore:      result.Metadata.FairnessScore,
			Algorithm:          result.Metadata.Algorithm,
			WarningCodes:       warningCodes,
			CreatedAt:          time.Now().UTC(),
		}
		if rerr := store.Record(ctx, run); rerr != nil {
			log.Warn().Err(rerr).Msg("failed to record run history")
		}
	}

	if viper.GetBool("json") {
		return printJSON(result)
	}
	printText(result)
	return nil
}

func openHistoryStore(ctx context.Context, path string) (*history.Store, error) {
	db, err := history.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	store := history.New(db, "sqlite")
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
