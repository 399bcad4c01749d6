// Sample counter session: two drinks rung up in memory, receipt and
// drink description printed. Illustrative usage of the domain
// packages, not part of the API.
package main

import (
	"encoding/json"
	"fmt"
	"log"

	"cinos/internal/drink"
	"cinos/internal/order"
)

func main() {
	latte, err := drink.New("Latte", []string{"Vanilla"}, "Large")
	if err != nil {
		log.Fatal(err)
	}

	espresso, err := drink.New("Espresso", nil, "Small")
	if err != nil {
		log.Fatal(err)
	}

	o := order.NewOrder()
	if err := o.AddDrink(latte); err != nil {
		log.Fatal(err)
	}
	if err := o.AddDrink(espresso); err != nil {
		log.Fatal(err)
	}

	receipt, err := json.MarshalIndent(o.Receipt(), "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(receipt))
	fmt.Println(latte.Describe())
}
