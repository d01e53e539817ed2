package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"

	appErrors "github.com/jupiter96/tradespeoplehub-sub000/internal/errors"
	"github.com/jupiter96/tradespeoplehub-sub000/internal/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	AdminKeyHeader  = "X-Admin-Key"
	adminKeyContext = "admin_key_id"
)

// AdminAuth confere X-Admin-Key contra o hash bcrypt configurado. Chaves já conferidas
// ficam em cache pelo sha256 para não pagar o bcrypt a cada requisição.
type AdminAuth struct {
	hash     []byte
	verified sync.Map
}

func NewAdminAuth(apiKeyHash string) *AdminAuth {
	return &AdminAuth{hash: []byte(strings.TrimSpace(apiKeyHash))}
}

func (a *AdminAuth) Enabled() bool {
	return len(a.hash) > 0
}

// Verify devolve o identificador da chave (prefixo do sha256) quando ela confere.
func (a *AdminAuth) Verify(key string) (string, bool) {
	if key == "" || !a.Enabled() {
		return "", false
	}
	sum := sha256.Sum256([]byte(key))
	fingerprint := hex.EncodeToString(sum[:])
	if _, ok := a.verified.Load(fingerprint); ok {
		return fingerprint[:12], true
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(key)); err != nil {
		return "", false
	}
	a.verified.Store(fingerprint, struct{}{})
	return fingerprint[:12], true
}

func (a *AdminAuth) Middleware() gin.HandlerFunc {
	if !a.Enabled() {
		logger.Warn().Msg("ADMIN_API_KEY_HASH vazio: rotas administrativas sem autenticação")
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		id, ok := a.Verify(c.GetHeader(AdminKeyHeader))
		if !ok {
			abortWithError(c, appErrors.ErrUnauthorized)
			return
		}
		c.Set(adminKeyContext, id)
		c.Next()
	}
}

func HashAdminKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
