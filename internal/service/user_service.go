package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/questweb/user-service/config"
	"github.com/questweb/user-service/internal/domain"
	"github.com/questweb/user-service/internal/dto"
	"github.com/questweb/user-service/internal/repository"
	"github.com/questweb/user-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type UserService interface {
	GetUsers(ctx context.Context) (resp []dto.UserResponse, err error)
	GetUserByID(ctx context.Context, id int64) (resp dto.UserResponse, err error)
	GetUserAddresses(ctx context.Context, id int64) (resp []dto.AddressResponse, err error)
	UpdateUser(ctx context.Context, actorUsername string, id int64, payload dto.UserUpdateRequest) (resp dto.UserResponse, err error)
	DeleteUser(ctx context.Context, actorUsername string, id int64) (err error)
}

type ServiceImpl struct {
	repo          repository.UserRepository
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateNewService(repo repository.UserRepository, config config.Config, kafkaProducer *kafka.Conn) UserService {
	return &ServiceImpl{repo: repo, config: config, kafkaProducer: kafkaProducer}
}

func (s *ServiceImpl) GetUsers(ctx context.Context) (resp []dto.UserResponse, err error) {
	users, err := s.repo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}

	return resp, nil
}

func (s *ServiceImpl) GetUserByID(ctx context.Context, id int64) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	if user.ID == 0 {
		return resp, fmt.Errorf("%w: %d", errs.ErrUserIDNotFound, id)
	}

	return toUserResponse(user), nil
}

func (s *ServiceImpl) GetUserAddresses(ctx context.Context, id int64) (resp []dto.AddressResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.ID == 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrUserIDNotFound, id)
	}

	addresses, err := s.repo.GetAddressesByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		resp = append(resp, dto.AddressResponse{
			ID:         address.ID,
			UserID:     address.UserID,
			Street:     address.Street,
			City:       address.City,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		})
	}

	return resp, nil
}

// UpdateUser checks the caller's permission against the path id before the
// target row is looked up, so an unauthorized caller gets a permission error
// even for an id that does not exist. DeleteUser deliberately orders these
// two checks the other way around.
func (s *ServiceImpl) UpdateUser(ctx context.Context, actorUsername string, id int64, payload dto.UserUpdateRequest) (resp dto.UserResponse, err error) {
	actor, err := s.repo.GetUserByUsername(ctx, actorUsername)
	if err != nil {
		return
	}

	if actor.ID == 0 {
		return resp, errs.ErrNotLoggedIn
	}

	if actor.Role != domain.RoleAdmin && actor.ID != id {
		return resp, errs.ErrNoPermission
	}

	target, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	if target.ID == 0 {
		return resp, errs.ErrUserNotFound
	}

	if actor.Role == domain.RoleAdmin && payload.Role != nil {
		if !payload.Role.Valid() {
			return resp, errs.ErrClient
		}
		target.Role = *payload.Role
	}

	if payload.Username != nil {
		target.Username = *payload.Username
	}

	target.UpdatedAt = time.Now().UnixMilli()

	if err = s.repo.UpdateUser(ctx, target); err != nil {
		return
	}

	s.publishEvent("user_updated", toUserResponse(target))

	return toUserResponse(target), nil
}

// DeleteUser resolves the target row first, so a missing id is reported as
// not-found to every caller, admin or not.
func (s *ServiceImpl) DeleteUser(ctx context.Context, actorUsername string, id int64) (err error) {
	actor, err := s.repo.GetUserByUsername(ctx, actorUsername)
	if err != nil {
		return
	}

	if actor.ID == 0 {
		return errs.ErrNotLoggedIn
	}

	target, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return
	}

	if target.ID == 0 {
		return errs.ErrUserNotFound
	}

	if actor.Role != domain.RoleAdmin && actor.ID != target.ID {
		return errs.ErrDeleteDenied
	}

	if err = s.repo.DeleteUser(ctx, target.ID); err != nil {
		return
	}

	s.publishEvent("user_deleted", toUserResponse(target))

	return nil
}

// publishEvent is best-effort: the row mutation has already committed, so a
// broker failure is logged and not surfaced to the caller.
func (s *ServiceImpl) publishEvent(eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventID:   ulid.Make().String(),
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	_, err = s.kafkaProducer.WriteMessages(kafka.Message{Value: jsonMsg})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Str("event_type", eventType).Msg("")
	}
}

func toUserResponse(user domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
