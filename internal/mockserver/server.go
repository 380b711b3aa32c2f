package mockserver

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/basket/telemock/internal/oteltrace"
	"github.com/basket/telemock/internal/validate"
)

// Server is the fake Telegram Bot API HTTP handler: one method per emulated
// endpoint, all closing over the same State.
type Server struct {
	state     *State
	botUser   tgbotapi.User
	logger    *slog.Logger
	tracer    trace.Tracer
	validator *validate.Validator
	mux       *http.ServeMux
}

// NewServer builds the routed handler for botUser's endpoints.
func NewServer(botUser tgbotapi.User, state *State, logger *slog.Logger, tracer trace.Tracer) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer("mockserver")
	}
	validator, err := validate.New()
	if err != nil {
		// The schema set is a fixed literal compiled into the binary; a
		// failure here means a programming error, not bad input.
		panic("mockserver: compiling request schemas: " + err.Error())
	}
	s := &Server{state: state, botUser: botUser, logger: logger, tracer: tracer, validator: validator, mux: http.NewServeMux()}
	s.registerRoutes()
	return s
}

// SetBotUser replaces the identity the server stamps as From on every
// synthesized message. Callers must not invoke this while a dispatch has
// in-flight requests against the server.
func (s *Server) SetBotUser(u tgbotapi.User) {
	s.botUser = u
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) endpoints() map[string]func(http.ResponseWriter, *http.Request) {
	return map[string]func(http.ResponseWriter, *http.Request){
		"sendmessage":            s.handleSendMessage,
		"sendphoto":              s.handleSendPhoto,
		"sendvideo":              s.handleSendVideo,
		"sendaudio":              s.handleSendAudio,
		"sendvoice":              s.handleSendVoice,
		"sendvideonote":          s.handleSendVideoNote,
		"sendanimation":          s.handleSendAnimation,
		"senddocument":           s.handleSendDocument,
		"sendlocation":           s.handleSendLocation,
		"sendvenue":              s.handleSendVenue,
		"sendcontact":            s.handleSendContact,
		"senddice":               s.handleSendDice,
		"sendpoll":               s.handleSendPoll,
		"sendsticker":            s.handleSendSticker,
		"sendmediagroup":         s.handleSendMediaGroup,
		"sendinvoice":            s.handleSendInvoice,
		"sendchataction":         s.handleSendChatAction,
		"editmessagetext":        s.handleEditMessageText,
		"editmessagecaption":     s.handleEditMessageCaption,
		"editmessagereplymarkup": s.handleEditMessageReplyMarkup,
		"deletemessage":          s.handleDeleteMessage,
		"deletemessages":         s.handleDeleteMessages,
		"forwardmessage":         s.handleForwardMessage,
		"copymessage":            s.handleCopyMessage,
		"answercallbackquery":    s.handleAnswerCallbackQuery,
		"pinchatmessage":         s.handlePinChatMessage,
		"unpinchatmessage":       s.handleUnpinChatMessage,
		"unpinallchatmessages":   s.handleUnpinAllChatMessages,
		"banchatmember":          s.handleBanChatMember,
		"unbanchatmember":        s.handleUnbanChatMember,
		"restrictchatmember":     s.handleRestrictChatMember,
		"setmessagereaction":     s.handleSetMessageReaction,
		"setmycommands":          s.handleSetMyCommands,
		"getme":                  s.handleGetMe,
		"getupdates":             s.handleGetUpdates,
		"getwebhookinfo":         s.handleGetWebhookInfo,
		"getfile":                s.handleGetFile,
	}
}

// registerRoutes wires a single catch-all handler: http.ServeMux cannot
// wildcard the token segment of /bot{token}/<Endpoint> or
// /file/bot{token}/{file_name}, so this handler parses the path itself.
func (s *Server) registerRoutes() {
	endpoints := s.endpoints()
	s.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/")
		segments := strings.Split(path, "/")

		if len(segments) == 3 && segments[0] == "file" && strings.HasPrefix(segments[1], "bot") {
			s.handleGetFileContent(w, r, segments[2])
			return
		}

		if len(segments) == 2 && strings.HasPrefix(segments[0], "bot") {
			endpoint := strings.ToLower(segments[1])
			handler, ok := endpoints[endpoint]
			if !ok {
				s.logger.Warn("unimplemented endpoint", "endpoint", segments[1])
				writeError(w, internalError("unimplemented endpoint "+segments[1]+"; please file an issue"))
				return
			}

			if !isMultipart(r) {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					writeError(w, badRequest("Failed to parse request body"))
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
				if verr := s.validator.Validate(endpoint, body); verr != nil {
					s.logger.Debug("rejected malformed request", "endpoint", endpoint, "error", verr)
					writeError(w, badRequest("Failed to parse request body"))
					return
				}
			}

			ctx, span := oteltrace.StartEndpointSpan(r.Context(), s.tracer, endpoint)
			defer span.End()
			handler(w, r.WithContext(ctx))
			return
		}

		writeError(w, badRequest("malformed path"))
	})
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && strings.HasPrefix(mediaType, "multipart/")
}

// Manager owns the running server's lifecycle: the ephemeral listener, the
// background Serve goroutine, and graceful shutdown triggered by canceling
// its context. Grounded on the teacher's
// internal/gateway/server_integration_test.go ephemeral-port pattern.
type Manager struct {
	Port   int
	cancel context.CancelFunc
	done   chan struct{}
}

// Start binds a loopback ephemeral port, serves the given handler on it in
// a background goroutine, and spawns a watcher that shuts the server down
// gracefully when its context is canceled. It blocks until the listener is
// bound (readiness), not until the server has stopped.
func Start(handler http.Handler) (*Manager, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	httpSrv := &http.Server{Handler: handler}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		_ = httpSrv.Serve(ln)
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = httpSrv.Shutdown(shutdownCtx)
		close(done)
	}()

	return &Manager{
		Port:   ln.Addr().(*net.TCPAddr).Port,
		cancel: cancel,
		done:   done,
	}, nil
}

// Close cancels the server's context without waiting for shutdown to
// complete.
func (m *Manager) Close() {
	m.cancel()
}

// Stop cancels the server's context and waits for graceful shutdown to
// finish or ctx to expire first.
func (m *Manager) Stop(ctx context.Context) error {
	m.cancel()
	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
