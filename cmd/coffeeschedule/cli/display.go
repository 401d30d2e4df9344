package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/meet-when/coffee-scheduler/internal/scheduling"
)

// jsonResult mirrors the engine's result JSON shape from the spec's
// external-interfaces section, for --json output. Metadata carries
// warnings as bare codes and processingTime as a Go duration string;
// specialHandling entries are not emitted.
type jsonResult struct {
	Success  bool               `json:"success"`
	Results  []jsonContactResult `json:"results"`
	Metadata jsonMetadata        `json:"metadata"`
}

type jsonContactResult struct {
	ContactID         string            `json:"contactId"`
	ContactName       string            `json:"contactName"`
	ContactTimezone   string            `json:"contactTimezone"`
	SuggestedSlots    []jsonSlot        `json:"suggestedSlots"`
	AlternativeAction *jsonAlternative  `json:"alternativeAction,omitempty"`
}

type jsonSlot struct {
	Start              string          `json:"start"`
	End                string          `json:"end"`
	Score              int             `json:"score"`
	UserDisplayTime    string          `json:"userDisplayTime"`
	ContactDisplayTime string          `json:"contactDisplayTime"`
	Explanation        jsonExplanation `json:"explanation"`
}

type jsonExplanation struct {
	Primary  string   `json:"primary"`
	Factors  []string `json:"factors"`
	Warnings []string `json:"warnings"`
}

type jsonAlternative struct {
	Reason     string `json:"reason"`
	Suggestion string `json:"suggestion"`
}

type jsonMetadata struct {
	TotalSlotsAnalyzed int      `json:"totalSlotsAnalyzed"`
	AverageQuality     float64  `json:"averageQuality"`
	FairnessScore      float64  `json:"fairnessScore"`
	ProcessingTime     string   `json:"processingTime"`
	Algorithm          string   `json:"algorithm"`
	Warnings           []string `json:"warnings,omitempty"`
}

func toJSONResult(result scheduling.BatchResult) jsonResult {
	out := jsonResult{Success: true}
	for _, r := range result.Results {
		jr := jsonContactResult{
			ContactID:       r.ContactID,
			ContactName:     r.ContactName,
			ContactTimezone: r.ContactTimezone,
		}
		for _, s := range r.SuggestedSlots {
			jr.SuggestedSlots = append(jr.SuggestedSlots, jsonSlot{
				Start:              s.Start.UTC().Format(time.RFC3339),
				End:                s.End.UTC().Format(time.RFC3339),
				Score:              s.Score,
				UserDisplayTime:    s.UserDisplayTime,
				ContactDisplayTime: s.ContactDisplayTime,
				Explanation: jsonExplanation{
					Primary:  s.Explanation.Primary,
					Factors:  s.Explanation.Factors,
					Warnings: s.Explanation.Warnings,
				},
			})
		}
		if r.AlternativeAction != nil {
			jr.AlternativeAction = &jsonAlternative{
				Reason:     r.AlternativeAction.Reason,
				Suggestion: r.AlternativeAction.Suggestion,
			}
		}
		out.Results = append(out.Results, jr)
	}

	var warningCodes []string
	for _, w := range result.Metadata.Warnings {
		warningCodes = append(warningCodes, string(w.Code))
	}
	out.Metadata = jsonMetadata{
		TotalSlotsAnalyzed: result.Metadata.TotalSlotsAnalyzed,
		AverageQuality:     result.Metadata.AverageQuality,
		FairnessScore:      result.Metadata.FairnessScore,
		ProcessingTime:     result.Metadata.ProcessingTime.String(),
		Algorithm:          result.Metadata.Algorithm,
		Warnings:           warningCodes,
	}
	return out
}

func printJSON(result scheduling.BatchResult) error {
	data, err := json.MarshalIndent(toJSONResult(result), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printText renders the result for a terminal under a "====" section
// banner, using humanize for the slot count and the
// elapsed-processing-time display.
func printText(result scheduling.BatchResult) {
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("COFFEE CHAT SCHEDULE")
	fmt.Println(strings.Repeat("=", 72))

	for _, r := range result.Results {
		fmt.Printf("\n%s (%s)\n", r.ContactName, r.ContactTimezone)
		if len(r.SuggestedSlots) == 0 {
			fmt.Println("  No slots could be scheduled.")
			if r.AlternativeAction != nil {
				fmt.Printf("  %s: %s\n", r.AlternativeAction.Reason, r.AlternativeAction.Suggestion)
			}
			continue
		}
		for _, s := range r.SuggestedSlots {
			fmt.Printf("  %s  score=%d  (%s)\n", s.UserDisplayTime, s.Score, s.Explanation.Primary)
		}
	}

	fmt.Println("\n" + strings.Repeat("-", 72))
	fmt.Printf("Slots analyzed: %s\n", humanize.Comma(int64(result.Metadata.TotalSlotsAnalyzed)))
	fmt.Printf("Average quality: %.1f\n", result.Metadata.AverageQuality)
	fmt.Printf("Fairness score: %.1f\n", result.Metadata.FairnessScore)
	fmt.Printf("Processing time: %s\n", humanizeDuration(result.Metadata.ProcessingTime))
	fmt.Printf("Algorithm: %s\n", result.Metadata.Algorithm)

	for _, w := range result.Metadata.Warnings {
		fmt.Printf("Warning: %s\n", w.Code)
	}
	for _, sh := range result.Metadata.SpecialHandling {
		fmt.Printf("Special handling: %s -> %s\n", sh.ContactID, sh.Code)
	}
}

func humanizeDuration(d time.Duration) string {
	if d < time.Millisecond {
		return "under 1ms"
	}
	return humanize.RelTime(time.Now().Add(-d), time.Now(), "", "")
}
