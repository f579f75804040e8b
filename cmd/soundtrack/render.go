package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"readingsoundtrack/internal/book"
	"readingsoundtrack/internal/music"
	"readingsoundtrack/internal/soundtrack"
)

// trackColumns are shown when present; tracks are otherwise opaque.
var trackColumns = []string{"id", "title", "artist", "genre", "mood", "energy"}

func renderBooks(out io.Writer, books []book.Book) error {
	if len(books) == 0 {
		_, err := fmt.Fprintln(out, "No books found.")
		return err
	}

	table := tablewriter.NewWriter(out)
	table.Header([]string{"ID", "Title", "Author", "Genre", "Rating"})
	for _, b := range books {
		if err := table.Append([]string{b.ID, b.Title, b.Author, b.Genre, b.Rating}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderBook(out io.Writer, b *book.Book) error {
	table := tablewriter.NewWriter(out)
	table.Header([]string{"Field", "Value"})
	rows := [][]string{
		{"ID", b.ID},
		{"Title", b.Title},
		{"Author", b.Author},
		{"Genre", b.Genre},
		{"Language", b.Language},
		{"Published", b.PubYear},
		{"Age category", b.AgeCategory},
		{"Rating", b.Rating},
		{"Tags", strings.Join(b.Tags, ", ")},
		{"Pages", b.PageCount},
		{"Description", b.Description},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderRecommendation(out io.Writer, rec *soundtrack.Recommendation) error {
	p := rec.MusicProfile
	fmt.Fprintf(out, "%s by %s (%s)\n\n", rec.Book.Title, rec.Book.Author, rec.Book.Genre)

	profile := tablewriter.NewWriter(out)
	profile.Header([]string{"Primary", "Secondary", "Mood", "Energy", "Tempo"})
	if err := profile.Append([]string{
		p.PrimaryGenre,
		p.SecondaryGenre,
		p.Mood,
		strconv.FormatFloat(p.Energy, 'f', -1, 64),
		p.Tempo,
	}); err != nil {
		return err
	}
	if err := profile.Render(); err != nil {
		return err
	}
	if p.Reasoning != "" {
		fmt.Fprintf(out, "%s\n", p.Reasoning)
	}
	fmt.Fprintln(out)

	if len(rec.Recommendations) == 0 {
		_, err := fmt.Fprintln(out, "No tracks found.")
		return err
	}
	return renderTracks(out, rec.Recommendations)
}

func renderTracks(out io.Writer, tracks []music.Track) error {
	var columns []string
	for _, c := range trackColumns {
		for _, t := range tracks {
			if _, ok := t[c]; ok {
				columns = append(columns, c)
				break
			}
		}
	}
	if len(columns) == 0 {
		_, err := fmt.Fprintf(out, "%d tracks\n", len(tracks))
		return err
	}

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = strings.ToUpper(c[:1]) + c[1:]
	}

	table := tablewriter.NewWriter(out)
	table.Header(header)
	for _, t := range tracks {
		row := make([]string, len(columns))
		for i, c := range columns {
			if v, ok := t[c]; ok && v != nil {
				row[i] = fmt.Sprint(v)
			}
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderHealth(out io.Writer, connected bool) error {
	status := "disconnected"
	if connected {
		status = "connected"
	}
	_, err := fmt.Fprintf(out, "gemini: %s\n", status)
	return err
}
