package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dev-harshvats/CABO/db"
	"github.com/dev-harshvats/CABO/handlers"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use: "cabo-server",
	Run: func(cmd *cobra.Command, args []string) {

		ctx, cancel := context.WithCancel(signalContext(context.Background()))
		defer cancel()

		// Create a new store
		store := db.NewStore()

		// Create room handler
		roomHandler := handlers.NewRoomHandler(store)

		// Set up periodic cleanup for empty rooms
		go func() {
			ticker := time.NewTicker(30 * time.Minute)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					count := store.CleanupEmptyRooms()
					log.Printf("Cleaned up %d empty rooms", count)
				case <-ctx.Done():
					return
				}
			}
		}()

		router := gin.Default()

		// API Routes
		api := router.Group("/api")
		{
			// Room creation
			api.POST("/rooms", roomHandler.CreateRoom)

			// Room routes
			rooms := api.Group("/rooms/:id")
			{
				rooms.GET("", roomHandler.GetRoom)
				rooms.POST("/join", roomHandler.JoinRoom)
				rooms.GET("/leave", roomHandler.LeaveRoom)

				// WebSocket endpoint for real-time play
				rooms.GET("/ws", roomHandler.WebSocketHandler)
			}
		}

		srv := &http.Server{
			Addr:    fmt.Sprint(":", viper.GetInt("app.port")),
			Handler: router,
		}

		go func() {
			<-ctx.Done()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Server shutdown failed: %v", err)
			}
			log.Printf("server is shutdown on port :%d", viper.GetInt("app.port"))
		}()

		log.Printf("Starting server on :%d", viper.GetInt("app.port"))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .server.toml)")
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetConfigType("toml")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".server")
	}

	viper.SetDefault("app.port", 3001)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func signalContext(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigs
		signal.Stop(sigs)
		close(sigs)
		cancel()
	}()
	return ctx
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
