package main

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/mastercactapus/gpr/gcode"
)

type api struct {
	http.Handler
	dataDir string
	sse     *sse.Server
	up      websocket.Upgrader
}

type parseEvent struct {
	File   string `json:"file"`
	Blocks int    `json:"blocks"`
	Error  string `json:"error,omitempty"`
}

func newAPI(dir string) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		dataDir: dir,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
	}
	a.up.CheckOrigin = func(*http.Request) bool { return true }

	r.HandleFunc("/api/parse", a.parse).Methods("POST")
	r.HandleFunc("/api/format", a.format).Methods("POST")
	r.HandleFunc("/api/stream/{name}", a.stream).Methods("GET")
	r.HandleFunc("/data/{name}", a.getFile).Methods("GET")
	r.HandleFunc("/data/{name}", a.putFile).Methods("PUT")
	r.HandleFunc("/data/{name}", a.deleteFile).Methods("DELETE")
	r.PathPrefix("/events/").Handler(a.sse)

	return a
}

func safePath(base, name string) (bool, string) {
	if filepath.Separator != '/' && strings.ContainsRune(name, filepath.Separator) {
		log.Println("invalid path '" + name + "'")
		return false, ""
	}
	dir := base
	if dir == "" {
		dir = "."
	}
	fullName := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+name)))
	return true, fullName
}

func (a *api) readProgram(w http.ResponseWriter, req *http.Request) (gcode.Program, bool) {
	data, err := ioutil.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	var p gcode.Program
	if req.FormValue("text") == "1" {
		p, err = gcode.ParseWithBlockText(string(data))
	} else {
		p, err = gcode.Parse(string(data))
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return nil, false
	}
	return p, true
}

func (a *api) parse(w http.ResponseWriter, req *http.Request) {
	p, ok := a.readProgram(w, req)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(p)
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) format(w http.ResponseWriter, req *http.Request) {
	p, ok := a.readProgram(w, req)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := io.WriteString(w, p.String())
	if err != nil {
		log.Println("ERROR: write:", err)
	}
}

func (a *api) stream(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, mux.Vars(req)["name"])
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	data, err := ioutil.ReadFile(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	p, err := gcode.Parse(string(data))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	conn, err := a.up.Upgrade(w, req, nil)
	if err != nil {
		log.Printf("ERROR: upgrade: %+v", err)
		return
	}
	defer conn.Close()

	for _, b := range p {
		err = conn.WriteJSON(b)
		if err != nil {
			log.Printf("ERROR: stream '%s': %+v", name, err)
			return
		}
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(10*time.Second))
}

func (a *api) getFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, mux.Vars(req)["name"])
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	http.ServeFile(w, req, name)
}

func (a *api) putFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, mux.Vars(req)["name"])
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	data, err := ioutil.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	os.MkdirAll(filepath.Dir(name), 0755)
	err = ioutil.WriteFile(name, data, 0644)
	if err != nil {
		log.Printf("ERROR: create '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}

	// Parse the upload and publish a summary so visualizer clients can react
	// to new programs without polling.
	ev := parseEvent{File: mux.Vars(req)["name"]}
	p, err := gcode.Parse(string(data))
	if err != nil {
		ev.Error = err.Error()
	} else {
		ev.Blocks = len(p)
	}
	msg, err := json.Marshal(ev)
	if err != nil {
		log.Printf("ERROR: marshal json: %+v", err)
		return
	}
	a.sse.SendMessage("/events/parse", sse.SimpleMessage(string(msg)))
}

func (a *api) deleteFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, mux.Vars(req)["name"])
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	err := os.Remove(name)
	if err != nil {
		log.Printf("ERROR: delete '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
}
