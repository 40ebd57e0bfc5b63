package getMe

import (
	"log/slog"
	"net/http"

	"eventPlanner/internal/lib/api/response"
	"eventPlanner/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/nbd-wtf/go-nostr/nip19"
)

type MeResponse struct {
	response.Response
	LoggedIn bool   `json:"loggedIn"`
	Pubkey   string `json:"pubkey,omitempty"`
	Npub     string `json:"npub,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Identity
type Identity interface {
	CurrentUser() (pubkey string, ok bool)
}

// New serves GET /me. Both forms of the key are returned so clients can
// show the bech32 one.
func New(log *slog.Logger, identity Identity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.getMe.New"

		log := log.With(slog.String("op", op))

		pubkey, ok := identity.CurrentUser()
		if !ok {
			render.JSON(w, r, MeResponse{Response: response.OK()})
			return
		}

		npub, err := nip19.EncodePublicKey(pubkey)
		if err != nil {
			log.Warn("failed to encode public key", sl.Err(err))
		}

		render.JSON(w, r, MeResponse{
			Response: response.OK(),
			LoggedIn: true,
			Pubkey:   pubkey,
			Npub:     npub,
		})
	}
}
