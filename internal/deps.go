package internal

import (
	"github.com/rubymeaddows/Ravensandquill/internal/catalog"
	"github.com/rubymeaddows/Ravensandquill/internal/service"
	"github.com/rubymeaddows/Ravensandquill/internal/store"
	"github.com/rubymeaddows/Ravensandquill/pkg/security"
)

// Deps carries everything the handlers need. Built once at startup and
// read-only afterwards.
type Deps struct {
	Accounts *store.AccountStore
	Profiles *store.ProfileStore
	Journals *store.JournalStore

	Tokens  *security.TimedToken
	Mail    *service.Mailer
	Images  *service.ImageStore
	Catalog *catalog.Catalog
}
