/*
Analisadorsrv starts an HTTP server exposing the parse front end as a
single POST /v1/parse endpoint.

Usage:

	analisadorsrv [flags]

The flags are:

	-v, --version
		Give the current version of analisadorsrv and then exit.

	-l, --listen ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or
		:PORT format. If not given, defaults to the value of environment
		variable ANALISADOR_LISTEN_ADDRESS, and if that is not given,
		defaults to the config file's http_addr, or localhost:8080 when
		there is none.

	-c, --config FILE
		Load settings from the given TOML file.
*/
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/lferreira-dev/analisador/internal/config"
	"github.com/lferreira-dev/analisador/internal/httpapi"
	"github.com/lferreira-dev/analisador/internal/version"
)

const (
	// EnvListen names the environment variable consulted when --listen is
	// not given on the command line.
	EnvListen = "ANALISADOR_LISTEN_ADDRESS"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of analisadorsrv and then exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagConfig  = pflag.StringP("config", "c", "", "Load settings from the given TOML file.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (analisador v%s)\n", "analisadorsrv", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		os.Exit(1)
	}

	cfg := config.Default()
	if *flagConfig != "" {
		loaded, err := config.Load(*flagConfig)
		if err != nil {
			log.Fatalf("FATAL could not load config: %s", err.Error())
		}
		cfg = loaded
	}

	listenAddr := os.Getenv(EnvListen)
	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	if listenAddr != "" {
		cfg.HTTPAddr = listenAddr
	}

	log.Printf("INFO  Starting analisador server on %s...", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, httpapi.New(cfg)); err != nil {
		log.Fatalf("FATAL server exited: %s", err.Error())
	}
}
