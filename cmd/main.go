package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	authapi "github.com/maheshmeenabalot/chat-app-backend/internal/api/auth"
	"github.com/maheshmeenabalot/chat-app-backend/internal/api/conversations"
	"github.com/maheshmeenabalot/chat-app-backend/internal/api/messages"
	"github.com/maheshmeenabalot/chat-app-backend/internal/api/realtime"
	"github.com/maheshmeenabalot/chat-app-backend/internal/api/users"
	"github.com/maheshmeenabalot/chat-app-backend/internal/auth"
	"github.com/maheshmeenabalot/chat-app-backend/internal/chat"
	"github.com/maheshmeenabalot/chat-app-backend/internal/config"
	"github.com/maheshmeenabalot/chat-app-backend/internal/middleware"
	"github.com/maheshmeenabalot/chat-app-backend/internal/session"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage/memory"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage/postgres"
	"github.com/maheshmeenabalot/chat-app-backend/internal/ws"
)

func main() {
	cfg := config.Load()

	var (
		userStore         storage.UserStore
		conversationStore storage.ConversationStore
		messageStore      storage.MessageStore
	)
	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()
		userStore = postgres.NewUserStore(db)
		conversationStore = postgres.NewConversationStore(db)
		messageStore = postgres.NewMessageStore(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory stores")
		userStore = memory.NewUserStore()
		conversationStore = memory.NewConversationStore()
		messageStore = memory.NewMessageStore()
	}

	var sessions session.Store
	if cfg.ValkeyURL != "" {
		valkeyStore, err := session.NewValkeyStore(cfg.ValkeyURL)
		if err != nil {
			log.Fatalf("failed to connect to valkey: %v", err)
		}
		defer valkeyStore.Close()
		sessions = valkeyStore
	} else {
		log.Println("VALKEY_URL not set, using in-memory session store")
		sessions = session.NewMemoryStore()
	}

	authenticator := auth.NewAuthenticator(cfg.JWTSecret, "chat-app", cfg.JWTTTL)

	hub := ws.NewHub()
	go hub.Run()
	defer hub.Close()

	service := chat.NewService(userStore, conversationStore, messageStore, hub)

	r := mux.NewRouter()
	authapi.RegisterRoutes(r, &authapi.Handler{
		Users:         userStore,
		Sessions:      sessions,
		Authenticator: authenticator,
	})
	realtime.RegisterRoutes(r, &realtime.Handler{
		Hub:           hub,
		Service:       service,
		AllowedOrigin: cfg.CORSOrigin,
	})

	// Subrouter keeps full paths; only the session middleware is added.
	protected := r.NewRoute().Subrouter()
	protected.Use(middleware.Auth(sessions))
	users.RegisterRoutes(protected, &users.Handler{Users: userStore})
	conversations.RegisterRoutes(protected, &conversations.Handler{Service: service})
	messages.RegisterRoutes(protected, &messages.Handler{Service: service})

	handler := middleware.CORS(cfg.CORSOrigin)(r)

	log.Printf("Server started at %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, handler))
}
