package telemock

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/basket/telemock/internal/config"
	"github.com/basket/telemock/internal/mockserver"
	"github.com/basket/telemock/internal/oteltrace"
	"github.com/basket/telemock/internal/shared"
	"github.com/basket/telemock/internal/telemetry"
	"github.com/basket/telemock/mockapi"
)

// MockBot owns one fake Telegram Bot API server and drives a handler tree
// through it, one batch of updates per Dispatch call.
type MockBot struct {
	client         *tgbotapi.BotAPI
	tree           HandlerTree
	pendingUpdates []tgbotapi.Update
	botUser        tgbotapi.User
	dependencies   DependencyMap
	distributionFn DistributionFunc
	errorHandler   ErrorHandler
	nextUpdateID   int32

	state  *mockserver.State
	server *mockserver.Manager
	apiURL string

	provider *oteltrace.Provider
	tracer   trace.Tracer
	logger   *slog.Logger

	dispatchSeq     int
	messagesSent    metric.Int64Counter
	dispatchesTotal metric.Int64Counter
}

// New constructs a MockBot: it starts a fresh fake server on an ephemeral
// loopback port, reroutes a dummy-token bot client at it, and materializes
// initial into the first batch of pending updates.
func New(initial mockapi.IntoUpdate, tree HandlerTree) (*MockBot, error) {
	return newMockBot(context.Background(), initial, tree, nil)
}

// NewWithDistributionFunction is New with an explicit update-partitioning
// function instead of the default single-partition behavior.
func NewWithDistributionFunction(initial mockapi.IntoUpdate, tree HandlerTree, fn DistributionFunc) (*MockBot, error) {
	return newMockBot(context.Background(), initial, tree, fn)
}

func newMockBot(ctx context.Context, initial mockapi.IntoUpdate, tree HandlerTree, distribution DistributionFunc) (*MockBot, error) {
	defaults := config.StandardDefaults()
	logger := telemetry.NewLogger(defaults.LogLevel)

	provider, err := oteltrace.Init(ctx, oteltrace.Config{Enabled: true, ServiceName: "telemock"})
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	state := mockserver.NewState()
	botUser := mockapi.NewBotUser().WithID(mockapi.AsUserID(defaults.BotUserID)).Build()

	srv := mockserver.NewServer(botUser, state, logger, provider.Tracer)
	mgr, err := mockserver.Start(srv)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, fmt.Errorf("start mock server: %w", err)
	}

	apiURL := fmt.Sprintf("http://127.0.0.1:%d", mgr.Port)
	endpoint := apiURL + "/bot%s/%s"
	client, err := tgbotapi.NewBotAPIWithAPIEndpoint(defaults.BotToken, endpoint)
	if err != nil {
		mgr.Close()
		_ = provider.Shutdown(ctx)
		return nil, fmt.Errorf("construct rerouted bot client: %w", err)
	}

	messagesSent, err := provider.Meter.Int64Counter("telemock.messages.sent")
	if err != nil {
		return nil, fmt.Errorf("register messages counter: %w", err)
	}
	dispatchesTotal, err := provider.Meter.Int64Counter("telemock.dispatches.total")
	if err != nil {
		return nil, fmt.Errorf("register dispatches counter: %w", err)
	}

	if distribution == nil {
		distribution = defaultDistribution
	}

	mb := &MockBot{
		client:          client,
		tree:            tree,
		botUser:         botUser,
		dependencies:    DependencyMap{},
		distributionFn:  distribution,
		errorHandler:    nil,
		nextUpdateID:    defaults.StartingUpdateID,
		state:           state,
		server:          mgr,
		apiURL:          apiURL,
		provider:        provider,
		tracer:          provider.Tracer,
		logger:          logger,
		messagesSent:    messagesSent,
		dispatchesTotal: dispatchesTotal,
	}
	mb.Update(initial)
	return mb, nil
}

// Update replaces the pending update batch the next Dispatch call will run,
// stamping fresh update ids from the bot's monotonic counter.
func (mb *MockBot) Update(x mockapi.IntoUpdate) *MockBot {
	mb.pendingUpdates = x.IntoUpdate(&mb.nextUpdateID)
	return mb
}

// Dependencies replaces the dependency map the handler tree is invoked
// with.
func (mb *MockBot) Dependencies(deps map[string]any) *MockBot {
	mb.dependencies = DependencyMap(deps)
	return mb
}

// Me replaces the bot's own identity: both what GetMe reports and who
// synthesized messages are attributed to as From.
func (mb *MockBot) Me(b mockapi.UserBuilder) *MockBot {
	mb.botUser = b.Build()
	mb.server.SetBotUser(mb.botUser)
	return mb
}

// ErrorHandler installs a hook invoked with any error the handler tree's
// Dispatch call returns, in addition to that error still being returned
// from (*MockBot).Dispatch.
func (mb *MockBot) ErrorHandler(h ErrorHandler) *MockBot {
	mb.errorHandler = h
	return mb
}

// APIURL returns the loopback base URL the mock server answers on.
func (mb *MockBot) APIURL() string {
	return mb.apiURL
}

// Dispatch resets the response log, pre-inserts the pending updates'
// embedded messages into the store, and runs the handler tree against
// exactly that batch of updates in a freshly spawned goroutine — re-basing
// the stack so many sequential dispatches cannot accumulate frames across
// calls. Any panic inside the handler tree is forwarded and re-raised on
// the calling goroutine.
func (mb *MockBot) Dispatch(ctx context.Context) error {
	mb.state.Reset()

	traceID := shared.NewTraceID()
	ctx = shared.WithTraceID(ctx, traceID)
	mb.dispatchSeq++
	ctx = shared.WithDispatchSeq(ctx, mb.dispatchSeq)

	ctx, span := oteltrace.StartDispatchSpan(ctx, mb.tracer, mb.dispatchSeq, len(mb.pendingUpdates))
	defer span.End()

	updates := mb.pendingUpdates
	mb.preInsertMessages(updates)

	updatesCh := make(chan tgbotapi.Update, len(updates))
	for _, u := range updates {
		mb.logger.Debug("dispatching update", "update_id", u.UpdateID, "partition", mb.distributionFn(u))
		updatesCh <- u
	}
	close(updatesCh)

	type outcome struct {
		err   error
		panic any
	}
	done := make(chan outcome, 1)

	go func() {
		var out outcome
		defer func() {
			if r := recover(); r != nil {
				out.panic = r
			}
			done <- out
		}()
		out.err = mb.tree.Dispatch(ctx, mb.client, UpdatesChannel(updatesCh), mb.dependencies)
	}()

	var result outcome
	select {
	case result = <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if result.panic != nil {
		panic(result.panic)
	}

	if result.err != nil && mb.errorHandler != nil {
		mb.errorHandler(ctx, result.err)
	}

	unlock := mb.state.Lock()
	sentCount := len(mb.state.Responses.SentMessages)
	unlock()
	mb.messagesSent.Add(ctx, int64(sentCount))
	mb.dispatchesTotal.Add(ctx, 1)

	return result.err
}

// preInsertMessages makes every pending update's embedded message visible
// in the store before the handler tree runs, matching the invariant that a
// reply-to or edit target must already exist. Reply chains are inserted
// depth-first so a multi-level reply-to is fully resolvable.
func (mb *MockBot) preInsertMessages(updates []tgbotapi.Update) {
	unlock := mb.state.Lock()
	defer unlock()

	for _, u := range updates {
		switch {
		case u.EditedMessage != nil:
			edited := *u.EditedMessage
			if _, ok := mb.state.Messages.Get(edited.MessageID); ok {
				mb.state.Messages.EditField(edited.MessageID, func(m *tgbotapi.Message) { *m = edited })
			} else {
				mb.state.Messages.Add(edited)
			}
		case u.Message != nil:
			insertMessageChain(mb.state.Messages, *u.Message)
		case u.CallbackQuery != nil && u.CallbackQuery.Message != nil:
			insertMessageChain(mb.state.Messages, *u.CallbackQuery.Message)
		}
	}
}

func insertMessageChain(store *mockserver.MessageStore, msg tgbotapi.Message) {
	if msg.ReplyToMessage != nil {
		insertMessageChain(store, *msg.ReplyToMessage)
	}
	if _, ok := store.Get(msg.MessageID); !ok {
		store.Add(msg)
	}
}

// Close stops the fake server and shuts down the telemetry provider. After
// Close, Dispatch must not be called again.
func (mb *MockBot) Close() {
	mb.server.Close()
	_ = mb.provider.Shutdown(context.Background())
}
