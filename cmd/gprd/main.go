package main

import (
	"flag"
	"log"
	"net/http"
)

func main() {
	log.SetFlags(log.Lshortfile)

	addr := flag.String("addr", ":9092", "Address to bind the gprd server to.")
	dir := flag.String("dir", "./data", "Data directory for stored programs.")
	cfgFile := flag.String("config", "", "Optional YAML config file; flags take precedence.")
	flag.Parse()

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(&cfg, *addr, *dir)

	api := newAPI(cfg.DataDir)

	err = http.ListenAndServe(cfg.Addr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
		api.ServeHTTP(w, req)
	}))
	if err != nil {
		log.Fatal(err)
	}
}
