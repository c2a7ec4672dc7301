package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"sensorika-scraper/internal/config"
	"sensorika-scraper/internal/export"
	"sensorika-scraper/internal/fetch"
	"sensorika-scraper/internal/models"
	"sensorika-scraper/internal/scrape"
)

func main() {
	resource := flag.String("resource", "students", "what to scrape: students | news | freelancers | student | news-item")
	id := flag.Int("id", 0, "record id (student / news-item)")
	pageURL := flag.String("url", "", "full source page URL (student / news-item)")
	format := flag.String("format", "json", "output format: json | ndjson | csv")
	out := flag.String("output", "", "output file (default stdout)")
	timeout := flag.Duration("timeout", 15*time.Second, "fetch timeout")
	flag.Parse()

	cfg := config.Load()
	client := fetch.NewClient(*timeout, cfg.UserAgent, 5*1024*1024)
	svc := scrape.NewService(client, cfg.BaseURL)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout+5*time.Second)
	defer cancel()

	w := io.Writer(os.Stdout)
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintln(os.Stderr, "create output:", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := run(ctx, svc, w, *resource, *format, *id, *pageURL); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, svc *scrape.Service, w io.Writer, resource, format string, id int, pageURL string) error {
	switch resource {
	case "students":
		students, err := svc.Students(ctx)
		if err != nil {
			return err
		}
		return writeStudents(w, format, students)
	case "freelancers":
		freelancers, err := svc.Freelancers(ctx)
		if err != nil {
			return err
		}
		return writeStudents(w, format, freelancers)
	case "news":
		news, err := svc.News(ctx)
		if err != nil {
			return err
		}
		switch format {
		case "csv":
			return export.WriteNewsCSV(w, news)
		case "ndjson":
			items := make([]any, len(news))
			for i, n := range news {
				items[i] = n
			}
			return export.WriteNDJSON(w, items)
		default:
			return writeJSON(w, news)
		}
	case "student":
		if id == 0 || pageURL == "" {
			return fmt.Errorf("resource 'student' needs --id and --url")
		}
		detail, err := svc.StudentByID(ctx, id, pageURL)
		if err != nil {
			return err
		}
		return writeJSON(w, detail)
	case "news-item":
		if id == 0 || pageURL == "" {
			return fmt.Errorf("resource 'news-item' needs --id and --url")
		}
		detail, err := svc.NewsByID(ctx, id, pageURL)
		if err != nil {
			return err
		}
		return writeJSON(w, detail)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
}

func writeStudents(w io.Writer, format string, students []models.Student) error {
	switch format {
	case "csv":
		return export.WriteStudentsCSV(w, students)
	case "ndjson":
		items := make([]any, len(students))
		for i, s := range students {
			items[i] = s
		}
		return export.WriteNDJSON(w, items)
	default:
		return writeJSON(w, students)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
