// Command seeder fills the database with random demo data: an admin
// account, a set of locations with site-manager accounts and a pool of
// employees, some pre-assigned. Intended for local environments only.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tamathecxder/randomail"

	"github.com/Houeta/staffdesk/internal/auth"
	"github.com/Houeta/staffdesk/internal/config"
	"github.com/Houeta/staffdesk/internal/metrics"
	"github.com/Houeta/staffdesk/internal/models"
	"github.com/Houeta/staffdesk/internal/repository"
	"github.com/Houeta/staffdesk/internal/services/directory"
)

const defaultPassword = "0000"

var firstNames = []string{
	"Ada", "Boris", "Clara", "Dmytro", "Elena", "Felix", "Greta", "Hugo",
	"Iryna", "Jonas", "Katya", "Leo", "Marta", "Nina", "Oskar", "Petra",
}

var lastNames = []string{
	"Archer", "Bauer", "Cole", "Dvorak", "Eriksen", "Fischer", "Gruber",
	"Hansen", "Ivanov", "Jensen", "Koval", "Lind", "Meyer", "Novak",
}

var produce = []string{
	"Carrot", "Tomato", "Pumpkin", "Cabbage", "Pepper", "Potato",
	"Cucumber", "Radish", "Spinach", "Beet",
}

var growerTypes = []string{"Farm", "Greenhouse"}

func main() {
	numLocations := flag.Int("locations", 18, "number of locations to create")
	numEmployees := flag.Int("employees", 50, "number of employees to create")
	flag.Parse()

	ctx := context.Background()
	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dtb, err := repository.NewDatabase(
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname,
		time.Duration(cfg.Server.LockTimeout)*time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dtb.Close()

	appMetrics := metrics.NewMetrics(prometheus.NewRegistry())
	store := repository.NewStore(dtb, appMetrics)
	identity := auth.NewIdentity(logger, store)
	dir := directory.NewDirectory(logger, dtb, store, appMetrics)

	if err = identity.CreateAccount(ctx, "root@admin.com", "root", models.RoleAdmin); err != nil {
		logger.Warn("Admin account not created", "error", err)
	}

	locationIDs := make([]int64, 0, *numLocations)
	for range *numLocations {
		name := fmt.Sprintf("%s's %s %s",
			lastNames[rand.Intn(len(lastNames))],
			produce[rand.Intn(len(produce))],
			growerTypes[rand.Intn(len(growerTypes))])
		address := fmt.Sprintf("%d Market Street", rand.Intn(9000)+100)

		id, locErr := dir.CreateLocation(ctx, randomail.GenerateRandomEmail(), name, address, defaultPassword)
		if locErr != nil {
			logger.Warn("Location not created", "name", name, "error", locErr)
			continue
		}
		locationIDs = append(locationIDs, id)
		logger.Info("Location created", "id", id, "name", name)
	}

	for range *numEmployees {
		name := firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]

		// Roughly one in four stays in the unassigned pool.
		assignedTo := models.Unassigned
		if len(locationIDs) > 0 && rand.Intn(4) != 0 {
			assignedTo = locationIDs[rand.Intn(len(locationIDs))]
		}

		email := randomail.GenerateRandomEmail()
		if empErr := dir.CreateEmployee(ctx, email, name, defaultPassword, assignedTo, models.RoleStaff); empErr != nil {
			logger.Warn("Employee not created", "email", email, "error", empErr)
			continue
		}
		logger.Info("Employee created", "email", email, "assigned_to", assignedTo)
	}

	logger.Info("Seeding complete", "locations", len(locationIDs), "employees", *numEmployees)
}
