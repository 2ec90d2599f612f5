package launch

import (
	"context"
	"log"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/coder/quartz"
	"github.com/getlantern/systray"

	"main/config"
	"main/manager"
	"main/monitor"
	"main/observer"
	"main/query"
	"main/web"
)

func StartProgramme() {
	systray.Run(onReady, onExit)
}

func onReady() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Définir l'icône de l'application si le fichier est présent
	icon, err := os.ReadFile("./icon.ico")
	if err == nil {
		systray.SetIcon(icon)
	}

	systray.SetTitle("Activity Tracker")
	systray.SetTooltip("J'observe ton écran")

	go mainProgram(cfg)

	webURL := "http://" + cfg.ListenAddr
	mOpenWeb := systray.AddMenuItem("Ouvrir le dashboard", "Ouvrir "+webURL+" dans le navigateur")
	mQuit := systray.AddMenuItem("Quitter", "Quitter l'application")

	// Goroutine pour gérer les clics sur les éléments de menu
	go func() {
		for {
			select {
			case <-mOpenWeb.ClickedCh:
				openBrowser(webURL)
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}

func onExit() {
	// Nettoyer les ressources si nécessaire
	os.Exit(0)
}

func mainProgram(cfg config.Config) {
	// Échec d'initialisation du stockage = fatal: pas de monitoring sans base
	db, err := query.InitDatabase(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}

	mgr := manager.NewActivityManager()
	// Réamorcer la map avec les identifiants déjà connus du journal;
	// une erreur de lecture dégrade seulement (map vide au départ)
	if rows, err := db.LastSeenIdentifiers(); err != nil {
		log.Println("chargement des identifiants connus:", err)
	} else {
		mgr.Warm(rows)
	}

	mon := monitor.New(cfg, db, mgr, observer.New(), quartz.NewReal())
	mon.Start(context.Background())
	web.StartServer(cfg, db, mon)

	// Ouvrir le dashboard une fois le serveur démarré, au mieux
	go func() {
		time.Sleep(2 * time.Second)
		openBrowser("http://" + cfg.ListenAddr)
	}()
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Printf("ouverture du navigateur impossible: %v (ouvrez %s manuellement)", err, url)
	}
}
