package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dclimber/autonomo/internal/api/grpc/v1/autonomopb"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// GatewayBasePath is the HTTP prefix the gateway exposes the services under.
const GatewayBasePath = "/api/v1/autonomo"

// RegisterRidesGateway registers the Rides HTTP gateway handlers.
func RegisterRidesGateway(gwmux *runtime.ServeMux, conn grpc.ClientConnInterface) error {
	client := autonomopb.NewRidesClient(conn)

	routes := []struct {
		method  string
		path    string
		handler runtime.HandlerFunc
	}{
		{"GET", GatewayBasePath + "/rides/{id}", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			resp, err := client.GetRide(r.Context(), &autonomopb.RideQuery{Id: pathParams["id"]})
			writeGatewayResponse(w, resp, err)
		}},
		{"POST", GatewayBasePath + "/rides/request", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			var req autonomopb.RequestRideCommand
			if !decodeGatewayBody(w, r, &req) {
				return
			}
			resp, err := client.RequestRide(r.Context(), &req)
			writeGatewayResponse(w, resp, err)
		}},
		{"PUT", GatewayBasePath + "/rides/{id}/schedule", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			var req autonomopb.ScheduleRideCommand
			if !decodeGatewayBody(w, r, &req) {
				return
			}
			req.Id = pathParams["id"]
			resp, err := client.ScheduleRide(r.Context(), &req)
			writeGatewayResponse(w, resp, err)
		}},
		{"PUT", GatewayBasePath + "/rides/{id}/pickup", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			var req autonomopb.ConfirmPickupCommand
			if !decodeGatewayBody(w, r, &req) {
				return
			}
			req.Id = pathParams["id"]
			resp, err := client.ConfirmPickup(r.Context(), &req)
			writeGatewayResponse(w, resp, err)
		}},
		{"PUT", GatewayBasePath + "/rides/{id}/dropoff", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			var req autonomopb.EndRideCommand
			if !decodeGatewayBody(w, r, &req) {
				return
			}
			req.Id = pathParams["id"]
			resp, err := client.EndRide(r.Context(), &req)
			writeGatewayResponse(w, resp, err)
		}},
		{"DELETE", GatewayBasePath + "/rides/{id}", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			resp, err := client.CancelRide(r.Context(), &autonomopb.CancelRideCommand{Id: pathParams["id"]})
			writeGatewayResponse(w, resp, err)
		}},
	}

	for _, route := range routes {
		if err := gwmux.HandlePath(route.method, route.path, route.handler); err != nil {
			return fmt.Errorf("failed to register rides gateway route %s %s: %w", route.method, route.path, err)
		}
	}
	return nil
}

// RegisterVehiclesGateway registers the Vehicles HTTP gateway handlers.
func RegisterVehiclesGateway(gwmux *runtime.ServeMux, conn grpc.ClientConnInterface) error {
	client := autonomopb.NewVehiclesClient(conn)

	routes := []struct {
		method  string
		path    string
		handler runtime.HandlerFunc
	}{
		{"GET", GatewayBasePath + "/vehicles/mine", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			resp, err := client.ListMine(r.Context(), &autonomopb.OwnerQuery{Owner: r.URL.Query().Get("owner")})
			writeGatewayResponse(w, resp, err)
		}},
		{"GET", GatewayBasePath + "/vehicles/available", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			stream, err := client.ListAvailable(r.Context(), &autonomopb.ListAvailableQuery{})
			if err != nil {
				writeGatewayError(w, err)
				return
			}
			vehicles := []*autonomopb.VehicleStateResponse{}
			for {
				vehicle, err := stream.Recv()
				if err != nil {
					break
				}
				vehicles = append(vehicles, vehicle)
			}
			writeGatewayResponse(w, vehicles, nil)
		}},
		{"GET", GatewayBasePath + "/vehicles/{vin}", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			resp, err := client.GetVehicle(r.Context(), &autonomopb.VehicleQuery{Vin: pathParams["vin"]})
			writeGatewayResponse(w, resp, err)
		}},
		{"POST", GatewayBasePath + "/vehicles/mine", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
			var req autonomopb.AddVehicleCommand
			if !decodeGatewayBody(w, r, &req) {
				return
			}
			resp, err := client.AddVehicle(r.Context(), &req)
			writeGatewayResponse(w, resp, err)
		}},
		{"PUT", GatewayBasePath + "/vehicles/mine/{vin}/availability", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			resp, err := client.MakeAvailable(r.Context(), &autonomopb.VehicleCommand{Vin: pathParams["vin"]})
			writeGatewayResponse(w, resp, err)
		}},
		{"DELETE", GatewayBasePath + "/vehicles/mine/{vin}/availability", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			resp, err := client.RequestReturn(r.Context(), &autonomopb.VehicleCommand{Vin: pathParams["vin"]})
			writeGatewayResponse(w, resp, err)
		}},
		{"DELETE", GatewayBasePath + "/vehicles/mine/{vin}", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			resp, err := client.RemoveVehicle(r.Context(), &autonomopb.RemoveVehicleCommand{
				Vin:   pathParams["vin"],
				Owner: r.URL.Query().Get("owner"),
			})
			writeGatewayResponse(w, resp, err)
		}},
		{"PUT", GatewayBasePath + "/vehicles/available/{vin}/occupancy", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			resp, err := client.MarkOccupied(r.Context(), &autonomopb.VehicleCommand{Vin: pathParams["vin"]})
			writeGatewayResponse(w, resp, err)
		}},
		{"DELETE", GatewayBasePath + "/vehicles/available/{vin}/occupancy", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			resp, err := client.MarkUnoccupied(r.Context(), &autonomopb.VehicleCommand{Vin: pathParams["vin"]})
			writeGatewayResponse(w, resp, err)
		}},
		{"DELETE", GatewayBasePath + "/vehicles/available/{vin}", func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
			resp, err := client.ConfirmReturn(r.Context(), &autonomopb.VehicleCommand{Vin: pathParams["vin"]})
			writeGatewayResponse(w, resp, err)
		}},
	}

	for _, route := range routes {
		if err := gwmux.HandlePath(route.method, route.path, route.handler); err != nil {
			return fmt.Errorf("failed to register vehicles gateway route %s %s: %w", route.method, route.path, err)
		}
	}
	return nil
}

func decodeGatewayBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, fmt.Sprintf(`{"message":"invalid request body: %v"}`, err), http.StatusBadRequest)
		return false
	}
	return true
}

func writeGatewayResponse(w http.ResponseWriter, resp any, err error) {
	if err != nil {
		writeGatewayError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		http.Error(w, `{"message":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

func writeGatewayError(w http.ResponseWriter, err error) {
	st := status.Convert(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(runtime.HTTPStatusFromCode(st.Code()))
	_ = json.NewEncoder(w).Encode(map[string]string{"message": st.Message()})
}
