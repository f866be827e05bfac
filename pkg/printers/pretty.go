package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/stats"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Entries renders the journal as a table, one row per entry.
func (pp *PrettyPrint) Entries(entries ...*mood.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no entries yet\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	if pp.ShowID {
		table.AddRow("ID", "DAY", "MOOD", "TAGS", "MESSAGE")
	} else {
		table.AddRow("DAY", "MOOD", "TAGS", "MESSAGE")
	}
	for _, e := range entries {
		moodCol := fmt.Sprintf("%s %s", e.Rating, e.Rating.Meaning())
		tagsCol := tagTitles(e.Tags)
		if pp.ShowID {
			table.AddRow(e.ID, e.Title(), moodCol, tagsCol, e.Message)
		} else {
			table.AddRow(e.Title(), moodCol, tagsCol, e.Message)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Entry renders one entry in full.
func (pp *PrettyPrint) Entry(e *mood.Entry) {
	pp.Title(e.Title())

	label := color.New(color.Faint)
	_, _ = label.Print("mood     ")
	fmt.Printf("%s %s\n", e.Rating, e.Rating.Meaning())

	_, _ = label.Print("tags     ")
	if len(e.Tags) == 0 {
		fmt.Println("-")
	} else {
		fmt.Println(tagTitles(e.Tags))
	}

	_, _ = label.Print("message  ")
	if e.Message == "" {
		fmt.Println("-")
	} else {
		fmt.Println(e.Message)
	}

	if pp.ShowID {
		y := color.New(color.FgHiYellow, color.Italic, color.Faint)
		_, _ = y.Printf("%s\n", e.ID)
	}
	fmt.Println("")
}

// TagsDistribution renders tag usage counts.
func (pp *PrettyPrint) TagsDistribution(dist stats.TagsDistribution) {
	pp.Title("Tags")
	if len(dist.Tags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no tagged entries\n\n")
		return
	}
	table := uitable.New()
	table.AddRow("TAG", "COLOR", "COUNT")
	for _, tc := range dist.Tags {
		table.AddRow(tc.Tag.Title, tc.Tag.Color, tc.Count)
	}
	fmt.Println(table)

	c := color.New(color.Faint)
	switch dist.ItemsCount {
	case 1:
		_, _ = c.Println("across 1 entry")
	default:
		_, _ = c.Printf("across %d entries\n", dist.ItemsCount)
	}
	fmt.Println("")
}

// RatingsDistribution renders the mood histogram over the full scale.
func (pp *PrettyPrint) RatingsDistribution(counts []stats.RatingCount) {
	pp.Title("Moods")
	max := 0
	for _, rc := range counts {
		if rc.Count > max {
			max = rc.Count
		}
	}
	for _, rc := range counts {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("█", rc.Count*20/max)
		}
		fmt.Printf("%s %-15s %3d %s\n", rc.Rating, rc.Rating.Meaning(), rc.Count, bar)
	}
	fmt.Println("")
}

// Tags renders the configured tag set.
func (pp *PrettyPrint) Tags(tags []mood.Tag) {
	pp.Title("Tags")
	if len(tags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no tags configured\n\n")
		return
	}
	table := uitable.New()
	if pp.ShowID {
		table.AddRow("ID", "TITLE", "COLOR")
	} else {
		table.AddRow("TITLE", "COLOR")
	}
	for _, tag := range tags {
		if pp.ShowID {
			table.AddRow(tag.ID, tag.Title, tag.Color)
		} else {
			table.AddRow(tag.Title, tag.Color)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

func tagTitles(refs []mood.TagReference) string {
	titles := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Title != "" {
			titles = append(titles, ref.Title)
		} else {
			titles = append(titles, ref.ID)
		}
	}
	return strings.Join(titles, ", ")
}
