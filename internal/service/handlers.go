// Package service implements the local view server of the storefront client.
// Each handler serves one page contract or form submission: it parses the request,
// drives the client stores in the app package, maps store and backend errors to
// HTTP statuses and writes a JSON response.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"game_store/internal/api"
	"game_store/internal/app"
	"game_store/internal/models"
	"game_store/internal/pkg/logger"
	"game_store/internal/pkg/requester"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	requestTimeout = 30 * time.Second
	maxUploadSize  = 10 << 20

	// boughtGamesRedirect is where the view layer goes after a successful purchase.
	boughtGamesRedirect = "/bought-games"
)

// handlers aggregates dependencies needed by HTTP handlers, the client stores and logger.
type handlers struct {
	stores Stores
	log    *logger.Logger
}

// newHandlers initializes a new handlers instance.
func newHandlers(stores Stores, l *logger.Logger) *handlers {
	return &handlers{stores: stores, log: l}
}

// loginHandler logs in with the posted credentials and returns the session view.
// Rejected credentials come back as form errors under the general key.
func (handlers *handlers) loginHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var credentials models.Credentials
	if err := decodeJSON(req, &credentials); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if fieldErrors := handlers.stores.Session.Login(ctx, credentials.Email, credentials.Password); fieldErrors != nil {
		writeJSON(res, fieldErrors, http.StatusBadRequest)
		return
	}
	writeJSON(res, handlers.sessionView(), http.StatusOK)
}

// registerHandler validates the sign-up form, creates the account and logs in.
func (handlers *handlers) registerHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	var registration models.Registration
	if err := decodeJSON(req, &registration); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	if fieldErrors := handlers.stores.Session.Register(ctx, registration); fieldErrors != nil {
		writeJSON(res, fieldErrors, http.StatusBadRequest)
		return
	}
	writeJSON(res, handlers.sessionView(), http.StatusCreated)
}

// logoutHandler clears the session. It never fails.
func (handlers *handlers) logoutHandler(res http.ResponseWriter, req *http.Request) {
	handlers.stores.Session.Logout(req.Context())
	res.WriteHeader(http.StatusNoContent)
}

// sessionHandler returns the session view, including whether the access token has expired.
func (handlers *handlers) sessionHandler(res http.ResponseWriter, req *http.Request) {
	writeJSON(res, handlers.sessionView(), http.StatusOK)
}

// refreshSessionHandler re-fetches the profile and returns the session view.
func (handlers *handlers) refreshSessionHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	handlers.stores.Session.RefreshUser(ctx)
	writeJSON(res, handlers.sessionView(), http.StatusOK)
}

// usersHandler lists the backend accounts. It degrades to an empty list.
func (handlers *handlers) usersHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	writeJSON(res, handlers.stores.Session.Users(ctx), http.StatusOK)
}

// homeHandler returns the requested page of the whole catalog.
func (handlers *handlers) homeHandler(res http.ResponseWriter, req *http.Request) {
	handlers.applyViewParams(req, app.RouteHome)
	writeJSON(res, handlers.stores.Catalog.Home(), http.StatusOK)
}

// refreshGamesHandler re-fetches the catalog and resets the pagination.
func (handlers *handlers) refreshGamesHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if err := handlers.stores.Catalog.RefreshGames(ctx); err != nil {
		handlers.writeStoreError(res, err)
		return
	}
	handlers.stores.Catalog.ResetPagination()
	handlers.stores.Catalog.Navigate(app.RouteHome)
	writeJSON(res, handlers.stores.Catalog.Home(), http.StatusOK)
}

// myGamesHandler returns the requested page of the session user's listings.
func (handlers *handlers) myGamesHandler(res http.ResponseWriter, req *http.Request) {
	handlers.applyViewParams(req, app.RouteMine)
	writeJSON(res, handlers.stores.Catalog.Mine(), http.StatusOK)
}

// boughtGamesHandler returns the requested page of bought games and the total spent.
func (handlers *handlers) boughtGamesHandler(res http.ResponseWriter, req *http.Request) {
	handlers.applyViewParams(req, app.RouteBought)
	view := models.BoughtView{
		View:       handlers.stores.Catalog.Bought(handlers.stores.Purchases.Games()),
		TotalSpent: handlers.stores.Purchases.TotalSpent(),
	}
	writeJSON(res, view, http.StatusOK)
}

// gameDetailsHandler returns a game with its comments and what the session may do with it.
func (handlers *handlers) gameDetailsHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	gameID, ok := pathID(res, req, "id")
	if !ok {
		return
	}

	game, err := handlers.stores.Catalog.Game(ctx, gameID)
	if err != nil {
		handlers.writeStoreError(res, err)
		return
	}

	comments, err := handlers.stores.Comments.Load(ctx, gameID)
	if err != nil {
		comments = handlers.stores.Comments.List(gameID)
	}

	session := handlers.stores.Session
	details := models.GameDetails{
		Game:       *game,
		Comments:   comments,
		CanComment: session.IsAuthenticated() && handlers.stores.Comments.CanComment(gameID, session.Email()),
		IsOwner:    session.IsAuthenticated() && app.OwnedBy(*game, session.UserID()),
		IsBought:   handlers.stores.Purchases.Contains(gameID),
	}
	writeJSON(res, details, http.StatusOK)
}

// createGameHandler submits the multipart create form.
func (handlers *handlers) createGameHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	form, err := parseGameForm(req)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	game, err := handlers.stores.Catalog.CreateGame(ctx, form)
	if err != nil {
		handlers.writeStoreError(res, err)
		return
	}
	writeJSON(res, game, http.StatusCreated)
}

// editGameHandler submits the multipart edit form. clear_picture=true with no new
// file resets the picture to the placeholder.
func (handlers *handlers) editGameHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	gameID, ok := pathID(res, req, "id")
	if !ok {
		return
	}

	form, err := parseGameForm(req)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	game, err := handlers.stores.Catalog.EditGame(ctx, gameID, form)
	if err != nil {
		handlers.writeStoreError(res, err)
		return
	}
	writeJSON(res, game, http.StatusOK)
}

// deleteGameHandler deletes a listing.
func (handlers *handlers) deleteGameHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	gameID, ok := pathID(res, req, "id")
	if !ok {
		return
	}

	if err := handlers.stores.Catalog.DeleteGame(ctx, gameID); err != nil {
		handlers.writeStoreError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// buyGameHandler buys a game and points the view layer to the bought games page.
func (handlers *handlers) buyGameHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	gameID, ok := pathID(res, req, "id")
	if !ok {
		return
	}

	game, err := handlers.findGame(ctx, gameID)
	if err != nil {
		handlers.writeStoreError(res, err)
		return
	}

	bought, err := handlers.stores.Purchases.BuyGame(ctx, *game)
	if err != nil {
		handlers.writeStoreError(res, err)
		return
	}
	writeJSON(res, models.BuyResponse{Game: *bought, Redirect: boughtGamesRedirect}, http.StatusOK)
}

// addCommentHandler posts a comment on a game.
func (handlers *handlers) addCommentHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	gameID, ok := pathID(res, req, "id")
	if !ok {
		return
	}

	var comment models.CommentRequest
	if err := decodeJSON(req, &comment); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handlers.stores.Comments.Add(ctx, gameID, comment.Text)
	if err != nil {
		handlers.writeStoreError(res, err)
		return
	}
	writeJSON(res, created, http.StatusCreated)
}

// deleteCommentHandler removes one of the session user's comments.
func (handlers *handlers) deleteCommentHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	gameID, ok := pathID(res, req, "id")
	if !ok {
		return
	}
	commentID, ok := pathID(res, req, "commentID")
	if !ok {
		return
	}

	if err := handlers.stores.Comments.Remove(ctx, gameID, commentID); err != nil {
		handlers.writeStoreError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// updateProfileHandler submits the multipart profile form and returns the session view.
func (handlers *handlers) updateProfileHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}

	form := models.ProfileForm{
		FirstName: req.FormValue("first_name"),
		LastName:  req.FormValue("last_name"),
	}
	picture, err := formFile(req, "profile_picture")
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusBadRequest)
		return
	}
	form.Picture = picture

	if err := handlers.stores.Session.UpdateProfile(ctx, form); err != nil {
		handlers.writeStoreError(res, err)
		return
	}
	writeJSON(res, handlers.sessionView(), http.StatusOK)
}

// deleteProfileHandler deletes the session user's account.
func (handlers *handlers) deleteProfileHandler(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
	defer cancel()

	if err := handlers.stores.Session.DeleteAccount(ctx); err != nil {
		handlers.writeStoreError(res, err)
		return
	}
	res.WriteHeader(http.StatusNoContent)
}

// applyViewParams runs the catalog view pipeline for route: the route change first,
// then search, sort and page size (each resetting the page when it changes), then
// the explicit page.
func (handlers *handlers) applyViewParams(req *http.Request, route app.Route) {
	catalog := handlers.stores.Catalog
	query := req.URL.Query()

	catalog.Navigate(route)
	if query.Has("search") {
		if term := query.Get("search"); strings.TrimSpace(term) != catalog.ViewState().SearchTerm {
			catalog.HandleSearch(term)
		}
	}
	if query.Has("sort") {
		catalog.SetSort(models.ParseSort(query.Get("sort")))
	}
	if perPage, err := strconv.Atoi(query.Get("perPage")); err == nil {
		catalog.SetPerPage(perPage)
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		catalog.SetPage(page)
	}
}

// findGame returns the cached listing, fetching it when it is not cached.
func (handlers *handlers) findGame(ctx context.Context, gameID int64) (*models.Game, error) {
	for _, g := range handlers.stores.Catalog.Games() {
		if g.ID == gameID {
			return &g, nil
		}
	}
	return handlers.stores.Catalog.Game(ctx, gameID)
}

func (handlers *handlers) sessionView() models.SessionView {
	session := handlers.stores.Session
	snap := session.Snapshot()
	return models.SessionView{
		ID:              snap.ID,
		Email:           snap.Email,
		FirstName:       snap.FirstName,
		LastName:        snap.LastName,
		Money:           snap.Money,
		ProfilePicture:  snap.ProfilePicture,
		GamesCount:      snap.GamesCount,
		State:           session.State().String(),
		IsAuthenticated: snap.IsAuthenticated(),
		TokenExpired:    session.TokenExpired(time.Now()),
	}
}

// writeStoreError maps a store or backend error to a response. Backend error
// payloads are passed through verbatim with the backend status.
func (handlers *handlers) writeStoreError(res http.ResponseWriter, err error) {
	var fieldErrors models.FieldErrors
	if errors.As(err, &fieldErrors) {
		writeJSON(res, fieldErrors, http.StatusBadRequest)
		return
	}

	switch {
	case errors.Is(err, app.ErrNotAuthenticated):
		writeErrorResponse(res, "login required", http.StatusUnauthorized)
		return
	case errors.Is(err, app.ErrOwnGame):
		writeErrorResponse(res, "cannot buy your own game", http.StatusConflict)
		return
	case errors.Is(err, app.ErrAlreadyBought):
		writeErrorResponse(res, "game already bought", http.StatusConflict)
		return
	case errors.Is(err, app.ErrNotEnoughMoney):
		writeErrorResponse(res, "not enough money", http.StatusConflict)
		return
	case errors.Is(err, app.ErrAlreadyCommented):
		writeErrorResponse(res, "you already commented on this game", http.StatusConflict)
		return
	case errors.Is(err, app.ErrNotCommentAuthor):
		writeErrorResponse(res, "only the author can delete a comment", http.StatusForbidden)
		return
	case errors.Is(err, app.ErrCommentNotFound):
		writeErrorResponse(res, "comment not found", http.StatusNotFound)
		return
	case errors.Is(err, app.ErrPurchaseFailed):
		handlers.log.Warn("Purchase failed", zap.Error(err))
		writeErrorResponse(res, "purchase failed, please try again", http.StatusBadGateway)
		return
	case errors.Is(err, app.ErrProfileUpdateFailed):
		writeErrorResponse(res, "profile update failed", http.StatusBadGateway)
		return
	case errors.Is(err, app.ErrAccountDeleteFailed):
		writeErrorResponse(res, "account deletion failed", http.StatusBadGateway)
		return
	case errors.Is(err, api.ErrPageLimit):
		writeErrorResponse(res, "game listing is too large", http.StatusBadGateway)
		return
	}

	if apiErr, ok := requester.AsAPIError(err); ok {
		contentType := apiErr.ContentType
		if contentType == "" {
			contentType = "text/plain; charset=utf-8"
		}
		res.Header().Set("Content-Type", contentType)
		res.WriteHeader(apiErr.StatusCode)
		res.Write(apiErr.Body)
		return
	}

	handlers.log.Error("Backend unavailable", zap.Error(err))
	writeErrorResponse(res, err.Error(), http.StatusBadGateway)
}

// parseGameForm reads the multipart create/edit form.
func parseGameForm(req *http.Request) (models.GameForm, error) {
	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		return models.GameForm{}, err
	}

	form := models.GameForm{
		Title:        req.FormValue("title"),
		Category:     models.Category(req.FormValue("category")),
		Price:        req.FormValue("price"),
		Summary:      req.FormValue("summary"),
		ClearPicture: req.FormValue("clear_picture") == "true",
	}
	picture, err := formFile(req, "game_picture")
	if err != nil {
		return models.GameForm{}, err
	}
	form.Picture = picture
	return form, nil
}

// formFile returns the uploaded file under field, or nil when none was sent.
func formFile(req *http.Request, field string) (*models.File, error) {
	file, header, err := req.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readFile(file, header)
}

func readFile(file multipart.File, header *multipart.FileHeader) (*models.File, error) {
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}
	return &models.File{Name: header.Filename, ContentType: contentType, Content: content}, nil
}

// pathID parses the int64 URL parameter name, writing a 400 response when it is invalid.
func pathID(res http.ResponseWriter, req *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(req, name), 10, 64)
	if err != nil || id <= 0 {
		writeErrorResponse(res, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeJSON(req *http.Request, v any) error {
	requestBody, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(requestBody, v)
}

func writeJSON(res http.ResponseWriter, v any, statusCode int) {
	result, err := json.Marshal(v)
	if err != nil {
		writeErrorResponse(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	res.Write(result)
}

func writeErrorResponse(res http.ResponseWriter, errorInfo string, statusCode int) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(statusCode)
	json.NewEncoder(res).Encode(models.ErrorResponse{Errors: errorInfo})
}
