package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/sharukh-vs/skills-getting-started-with-github-copilot/pkg/sdk"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	client, err := sdk.Connect(os.Getenv("ACTIVITIES_ADDR"))
	if err != nil {
		log.Fatalf("Failed to configure client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	command := strings.ToUpper(os.Args[1])
	args := os.Args[2:]

	switch command {
	case "LIST":
		all, err := client.List(ctx)
		if err != nil {
			log.Fatal(err)
		}
		names := make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			a := all[name]
			fmt.Printf("%s (%d/%d) %s\n", name, len(a.Participants), a.MaxParticipants, a.Schedule)
		}

	case "SHOW":
		if len(args) < 1 {
			log.Fatal("Usage: activities SHOW <activity>")
		}
		a, err := client.Get(ctx, args[0])
		if err != nil {
			log.Fatal(err)
		}
		printJSON(a)

	case "SIGNUP":
		if len(args) < 2 {
			log.Fatal("Usage: activities SIGNUP <activity> <email>")
		}
		msg, err := client.Signup(ctx, args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(msg)

	case "REMOVE":
		if len(args) < 2 {
			log.Fatal("Usage: activities REMOVE <activity> <email>")
		}
		msg, err := client.Unregister(ctx, args[0], args[1])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(msg)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("activities - command line client for the activities service")
	fmt.Println("\nUsage:")
	fmt.Println("  activities LIST")
	fmt.Println("  activities SHOW <activity>")
	fmt.Println("  activities SIGNUP <activity> <email>")
	fmt.Println("  activities REMOVE <activity> <email>")
	fmt.Println("\nActivity names containing spaces must be quoted.")
	fmt.Println("\nEnvironment Variables:")
	fmt.Printf("  ACTIVITIES_ADDR    Address of the service (default: %s)\n", sdk.DefaultAddr)
}

func printJSON(v any) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(bytes))
}
