// Command shieldctl walks one shielding individual through a full ordering
// round against a running authority server: register, browse the catalog,
// pick a box, place the order and poll its status. Intended for manual
// smoke-testing against cmd/authority-mock.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"shieldbox"
	"shieldbox/internal/platform/config"
	"shieldbox/internal/platform/logger"
)

func main() {
	cfg := config.FromEnv()

	endpoint := flag.String("endpoint", cfg.Endpoint, "authority base URL")
	chiNumber := flag.String("chi", "1211121995", "CHI number to register")
	boxID := flag.Int("box", 1, "food box id to order")
	catererName := flag.String("caterer", "Alba Catering", "catering company to register first")
	catererPostcode := flag.String("caterer-postcode", "EH1_1AA", "catering company postcode")
	flag.Parse()

	log := logger.New()
	ctx := context.Background()
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	cat := shieldbox.NewCaterer(*endpoint, shieldbox.WithLogger(log), shieldbox.WithHTTPClient(httpClient))
	if !cat.Register(ctx, *catererName, *catererPostcode) {
		fail("could not register catering company %q", *catererName)
	}
	fmt.Printf("caterer %q registered at %s\n", cat.Name(), cat.Postcode())

	ind := shieldbox.NewIndividual(*endpoint, shieldbox.WithLogger(log), shieldbox.WithHTTPClient(httpClient))
	if !ind.Register(ctx, *chiNumber) {
		fail("could not register individual with CHI %s", *chiNumber)
	}
	fmt.Printf("registered %s %s at %s\n", ind.Name(), ind.Surname(), ind.Postcode())

	n := ind.FoodBoxCount(ctx)
	if n == shieldbox.CountNotFound {
		fail("could not fetch the food box catalog")
	}
	fmt.Printf("catalog offers %d boxes: %v\n", n, ind.FoodBoxIDs(ctx, ""))

	if !ind.PickFoodBox(ctx, *boxID) {
		fail("no food box %d in the catalog", *boxID)
	}
	for _, itemID := range ind.ItemIDsForFoodBox(ctx, *boxID) {
		fmt.Printf("  item %d: %s x%d\n",
			itemID, ind.ItemNameForFoodBox(ctx, itemID, *boxID), ind.ItemQuantityForFoodBox(ctx, itemID, *boxID))
	}

	if closest, ok := ind.ClosestCateringCompany(ctx); ok {
		fmt.Printf("closest caterer: %s (%s)\n", closest.Name, closest.Postcode)
	}

	if !ind.PlaceOrder(ctx, time.Now()) {
		fail("placing the order failed")
	}
	numbers := ind.OrderNumbers(ctx)
	number := numbers[len(numbers)-1]
	fmt.Printf("order %d placed\n", number)

	if ind.RequestOrderStatus(ctx, number) {
		fmt.Printf("order %d status: %s\n", number, ind.StatusForOrder(ctx, number))
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
