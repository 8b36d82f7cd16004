package quotes

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/graffic/citas-go/internal/config"
	"github.com/graffic/citas-go/internal/storage"
)

// storeFeature holds the state shared by the steps of one scenario.
type storeFeature struct {
	dir   string
	store *Store
}

func (f *storeFeature) anEmptyQuoteStore() error {
	dir, err := os.MkdirTemp("", "citas-feature-*")
	if err != nil {
		return err
	}
	f.dir = dir
	f.store = NewStore(storage.NewOpener(&config.DatabaseConfig{Path: filepath.Join(dir, "citas.db")}))
	return nil
}

func (f *storeFeature) iAddTheQuote(phrase, author string) error {
	_, err := f.store.Add(context.Background(), phrase, author)
	return err
}

func (f *storeFeature) iDeleteTheQuoteWithID(id int) error {
	return f.store.DeleteByID(context.Background(), int64(id))
}

func (f *storeFeature) iInitializeTheStoreTwice() error {
	if err := f.store.Initialize(context.Background()); err != nil {
		return err
	}
	return f.store.Initialize(context.Background())
}

func (f *storeFeature) theStoreListsTheIDs(expected string) error {
	quotes, err := f.store.List(context.Background())
	if err != nil {
		return err
	}

	var got []string
	for _, q := range quotes {
		got = append(got, strconv.FormatInt(q.ID, 10))
	}
	if strings.Join(got, ", ") != expected {
		return fmt.Errorf("expected ids %q, got %q", expected, strings.Join(got, ", "))
	}
	return nil
}

func (f *storeFeature) quoteIs(id int, phrase, author string) error {
	quotes, err := f.store.List(context.Background())
	if err != nil {
		return err
	}
	for _, q := range quotes {
		if q.ID != int64(id) {
			continue
		}
		if q.Phrase != phrase || q.Author != author {
			return fmt.Errorf("quote %d is %q by %q", id, q.Phrase, q.Author)
		}
		return nil
	}
	return fmt.Errorf("quote %d not found", id)
}

func (f *storeFeature) theRandomQuoteHasID(id int) error {
	quote, err := f.store.Random(context.Background())
	if err != nil {
		return err
	}
	if quote == nil {
		return fmt.Errorf("expected quote %d, got none", id)
	}
	if quote.ID != int64(id) {
		return fmt.Errorf("expected quote %d, got %d", id, quote.ID)
	}
	return nil
}

func (f *storeFeature) thereIsNoRandomQuote() error {
	quote, err := f.store.Random(context.Background())
	if err != nil {
		return err
	}
	if quote != nil {
		return fmt.Errorf("expected no quote, got %d", quote.ID)
	}
	return nil
}

func (f *storeFeature) cleanup() {
	if f.store != nil {
		f.store.Close()
	}
	if f.dir != "" {
		os.RemoveAll(f.dir)
	}
	*f = storeFeature{}
}

func initializeStoreScenario(ctx *godog.ScenarioContext) {
	f := &storeFeature{}

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		f.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an empty quote store$`, f.anEmptyQuoteStore)
	ctx.Step(`^I add the quote "([^"]*)" by "([^"]*)"$`, f.iAddTheQuote)
	ctx.Step(`^I delete the quote with id (\d+)$`, f.iDeleteTheQuoteWithID)
	ctx.Step(`^I initialize the store twice$`, f.iInitializeTheStoreTwice)
	ctx.Step(`^the store lists the ids "([^"]*)"$`, f.theStoreListsTheIDs)
	ctx.Step(`^quote (\d+) is "([^"]*)" by "([^"]*)"$`, f.quoteIs)
	ctx.Step(`^the random quote has id (\d+)$`, f.theRandomQuoteHasID)
	ctx.Step(`^there is no random quote$`, f.thereIsNoRandomQuote)
}

func TestStoreFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeStoreScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
