package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aseptimu/flatfile-shortener/internal/app/service"
	"github.com/aseptimu/flatfile-shortener/internal/app/store"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Filename string `short:"f" long:"file" description:"path to JSON database file" required:"true"`
	BaseURL  string `short:"b" long:"base" description:"base URL of shortened links" required:"true"`
}

var errNotFound = errors.New("not found")

const usage = "usage: shortener-cli -f FILE -b BASE_URL (add URL | get SHORTCODE | lookup URL)"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func run(argv []string, out io.Writer) error {
	var opts options
	args, err := flags.ParseArgs(&opts, argv)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New(usage)
	}

	fs, err := store.NewFileStore(opts.Filename, opts.BaseURL, nil)
	if err != nil {
		return err
	}
	svc := service.NewURLService(fs)
	ctx := context.Background()

	switch args[0] {
	case "add":
		shortURL, _, err := svc.ShortenURL(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, shortURL)
	case "get":
		originalURL, err := svc.GetOriginalURL(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, originalURL)
	case "lookup":
		shortURL, ok := fs.GetShortenedURL(ctx, args[1])
		if !ok {
			return fmt.Errorf("%s: %w", args[1], errNotFound)
		}
		fmt.Fprintln(out, shortURL)
	default:
		return errors.New(usage)
	}
	return nil
}
