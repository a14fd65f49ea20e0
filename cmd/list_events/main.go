package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/light-bringer/selfcheckout-service/proto/checkout/v1"
)

func main() {
	addr := flag.String("addr", "localhost:9090", "checkout service address")
	eventType := flag.String("type", "", "only events of this type (e.g. bill.verified)")
	aggregateID := flag.String("aggregate", "", "only events of this aggregate")
	limit := flag.Int("limit", 10, "max events to show")
	flag.Parse()

	// Connect to gRPC server
	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewCheckoutServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req := &pb.ListEventsRequest{Limit: int32(*limit)}
	if *eventType != "" {
		req.EventType = eventType
	}
	if *aggregateID != "" {
		req.AggregateID = aggregateID
	}

	resp, err := client.ListEvents(ctx, req)
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}

	if len(resp.Events) == 0 {
		fmt.Println("No events found!")
		return
	}

	fmt.Printf("Found %d events (total: %d):\n\n", len(resp.Events), resp.TotalCount)
	for i, event := range resp.Events {
		fmt.Printf("%d. %s\n", i+1, event.EventType)
		fmt.Printf("   Event ID: %s\n", event.EventID)
		fmt.Printf("   Aggregate ID: %s\n", event.AggregateID)
		fmt.Printf("   Status: %s\n", event.Status)
		fmt.Printf("   Created: %s\n", event.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("   Payload: %s\n\n", event.Payload)
	}
}
