// Package app wires every endpoint to its handler
package app

import (
	"fmt"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/rubymeaddows/Ravensandquill/app/auth"
	"github.com/rubymeaddows/Ravensandquill/app/journal"
	"github.com/rubymeaddows/Ravensandquill/app/pages"
	"github.com/rubymeaddows/Ravensandquill/app/profile"
	"github.com/rubymeaddows/Ravensandquill/db"
	"github.com/rubymeaddows/Ravensandquill/internal"
	"github.com/rubymeaddows/Ravensandquill/internal/catalog"
	"github.com/rubymeaddows/Ravensandquill/internal/service"
	"github.com/rubymeaddows/Ravensandquill/internal/store"
	"github.com/rubymeaddows/Ravensandquill/pkg/middleware"
	"github.com/rubymeaddows/Ravensandquill/pkg/security"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite database, %w", err)
	}

	argon := security.New()
	tokens := security.NewTimedToken(viper.GetString("security.secret"))

	d := &internal.Deps{
		Accounts: store.NewAccountStore(conn, argon),
		Profiles: store.NewProfileStore(conn),
		Journals: store.NewJournalStore(conn),
		Tokens:   tokens,
		Mail:     service.NewMailer(),
		Images:   service.NewImageStore(viper.GetString("upload.dir")),
		Catalog:  catalog.New(viper.GetString("data.dir")),
	}

	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("email"); v != "" {
					fields = append(fields, zap.String("email", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./static")

	session := middleware.RequireSession(tokens)

	// Public pages
	{
		// GET /			-> Landing page
		router.GET("/", h(d, pages.Home))

		// GET /author			-> About the author
		router.GET("/author", h(d, pages.Author))

		// GET /silence			-> Silence page
		router.GET("/silence", h(d, pages.Silence))

		// GET /loading			-> Loading interstitial
		router.GET("/loading", h(d, pages.Loading))

		// GET|POST /quotes		-> Random sample / filtered search
		router.GET("/quotes", h(d, pages.Quotes))
		router.POST("/quotes", h(d, pages.Quotes))

		// GET /aesthetics		-> All aesthetics posts
		router.GET("/aesthetics", h(d, pages.Aesthetics))

		// GET /aesthetic/:id		-> Single post, 404 when unknown
		router.GET("/aesthetic/:id", h(d, pages.BlogPost))
	}

	// Account flows
	{
		// GET|POST /signup		-> Creates an unverified account
		router.GET("/signup", h(d, auth.SignupPage))
		router.POST("/signup", h(d, auth.Signup))

		// GET /verify?token=		-> Resolves the emailed link
		router.GET("/verify", h(d, auth.Verify))

		// GET|POST /login		-> Issues the session cookie
		router.GET("/login", h(d, auth.LoginPage))
		router.POST("/login", h(d, auth.Login))

		// GET /logout			-> Clears the session cookie
		router.GET("/logout", h(d, auth.Logout))

		// GET|POST /forgot		-> Mails a timed reset link
		router.GET("/forgot", h(d, auth.ForgotPage))
		router.POST("/forgot", h(d, auth.Forgot))

		// GET|POST /reset/:token	-> Sets a new password
		router.GET("/reset/:token", h(d, auth.ResetPage))
		router.POST("/reset/:token", h(d, auth.Reset))
	}

	// Profile, session required
	p := router.Group("", session)
	{
		// GET /profile			-> Own profile page
		p.GET("/profile", h(d, profile.View))

		// GET|POST /create-profile	-> Full profile write
		p.GET("/create-profile", h(d, profile.CreatePage))
		p.POST("/create-profile", h(d, profile.Create))

		// GET|POST /profile/edit	-> Partial profile merge
		p.GET("/profile/edit", h(d, profile.EditPage))
		p.POST("/profile/edit", h(d, profile.Edit))
	}

	// Reading journal, session required
	j := router.Group("/reading-journal", session)
	{
		// GET /reading-journal		-> First entry or the create form
		j.GET("", h(d, journal.Landing))

		// GET|POST /reading-journal/create
		j.GET("/create", h(d, journal.CreatePage))
		j.POST("/create", h(d, journal.Create))

		// GET /reading-journal/view/:id
		j.GET("/view/:id", h(d, journal.View))

		// GET /reading-journal/all	-> Owner-filtered grid
		j.GET("/all", h(d, journal.All))

		// POST /reading-journal/delete/:id
		j.POST("/delete/:id", h(d, journal.Delete))

		// GET|POST /reading-journal/edit/:id
		j.GET("/edit/:id", h(d, journal.EditPage))
		j.POST("/edit/:id", h(d, journal.Edit))
	}

	return router, nil
}

func h(d *internal.Deps, fn func(*gin.Context, *internal.Deps)) gin.HandlerFunc {
	return func(c *gin.Context) { fn(c, d) }
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
