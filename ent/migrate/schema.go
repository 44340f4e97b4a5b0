// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "ddd", Type: field.TypeString, Nullable: true, Size: 3},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "interesse", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"novo_lead", "em_atendimento", "visita", "agendamento", "proposta", "venda_fechada", "venda_perdida"}, Default: "novo_lead"},
		{Name: "status_changed_at", Type: field.TypeTime},
		{Name: "archived", Type: field.TypeBool, Default: false},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeInt},
		{Name: "responsible_id", Type: field.TypeInt, Nullable: true},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "leads_tenants_leads",
				Columns:    []*schema.Column{LeadsColumns[12]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "leads_users_leads",
				Columns:    []*schema.Column{LeadsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "lead_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[12], LeadsColumns[6]},
			},
			{
				Name:    "lead_tenant_id_archived",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[12], LeadsColumns[8]},
			},
			{
				Name:    "lead_tenant_id_city",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[12], LeadsColumns[4]},
			},
			{
				Name:    "lead_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[12], LeadsColumns[10]},
			},
			{
				Name:    "lead_responsible_id",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[13]},
			},
			{
				Name:    "lead_status_changed_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[7]},
			},
		},
	}
	// LeadHistoriesColumns holds the columns for the "lead_histories" table.
	LeadHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "status_before", Type: field.TypeEnum, Enums: []string{"novo_lead", "em_atendimento", "visita", "agendamento", "proposta", "venda_fechada", "venda_perdida"}},
		{Name: "status_after", Type: field.TypeEnum, Enums: []string{"novo_lead", "em_atendimento", "visita", "agendamento", "proposta", "venda_fechada", "venda_perdida"}},
		{Name: "note", Type: field.TypeString, Nullable: true, Size: 1000},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt, Nullable: true},
	}
	// LeadHistoriesTable holds the schema information for the "lead_histories" table.
	LeadHistoriesTable = &schema.Table{
		Name:       "lead_histories",
		Columns:    LeadHistoriesColumns,
		PrimaryKey: []*schema.Column{LeadHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "lead_histories_leads_history",
				Columns:    []*schema.Column{LeadHistoriesColumns[5]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "lead_histories_users_history_entries",
				Columns:    []*schema.Column{LeadHistoriesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_lead_history_lead_time",
				Unique:  false,
				Columns: []*schema.Column{LeadHistoriesColumns[5], LeadHistoriesColumns[4]},
			},
			{
				Name:    "idx_lead_history_status_time",
				Unique:  false,
				Columns: []*schema.Column{LeadHistoriesColumns[2], LeadHistoriesColumns[4]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan", Type: field.TypeEnum, Enums: []string{"essencial", "profissional"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"trialing", "active", "canceled"}, Default: "trialing"},
		{Name: "external_id", Type: field.TypeString, Nullable: true},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "canceled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeInt},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_tenants_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[8]},
			},
			{
				Name:    "subscription_status",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[2]},
			},
			{
				Name:    "subscription_external_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[3]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "plan", Type: field.TypeEnum, Enums: []string{"trial", "essencial", "profissional"}, Default: "trial"},
		{Name: "trial_ends_at", Type: field.TypeTime, Nullable: true},
		{Name: "billing_email", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tenant_slug",
				Unique:  true,
				Columns: []*schema.Column{TenantsColumns[2]},
			},
			{
				Name:    "tenant_active",
				Unique:  false,
				Columns: []*schema.Column{TenantsColumns[6]},
			},
			{
				Name:    "tenant_created_at",
				Unique:  false,
				Columns: []*schema.Column{TenantsColumns[7]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"agent", "admin"}, Default: "agent"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeInt},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_tenants_users",
				Columns:    []*schema.Column{UsersColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[8]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LeadsTable,
		LeadHistoriesTable,
		SubscriptionsTable,
		TenantsTable,
		UsersTable,
	}
)

func init() {
	LeadsTable.ForeignKeys[0].RefTable = TenantsTable
	LeadsTable.ForeignKeys[1].RefTable = UsersTable
	LeadHistoriesTable.ForeignKeys[0].RefTable = LeadsTable
	LeadHistoriesTable.ForeignKeys[1].RefTable = UsersTable
	SubscriptionsTable.ForeignKeys[0].RefTable = TenantsTable
	UsersTable.ForeignKeys[0].RefTable = TenantsTable
}
